// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authService.Login(&req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": req.Username,
			"ip":       c.ClientIP(),
		}).Warn("Login rejected")
		respondError(c, err, nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Login successful",
		"username": res.Username,
		"redirect": res.Redirect,
	})
}
