// internal/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-admin/internal/services"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// GET /uploads/:name
func (h *UploadHandler) Serve(c *gin.Context) {
	img, err := h.storageService.Get(c.Param("name"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, img.MimeType, img.Data)
}
