// internal/services/auth_service.go
package services

import (
	"github.com/javajoker/catalog-admin/internal/config"
)

// DashboardLandingPath is where a successful login sends the admin.
const DashboardLandingPath = "/v1/dashboard?tab=products"

// AuthService is the demo login gate. It issues no token and keeps no
// session; the dashboard endpoints stay open.
type AuthService struct {
	cfg *config.Config
}

// LoginRequest fields are not required; an empty pair is simply a mismatch.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Redirect string `json:"redirect"`
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if req.Username != s.cfg.Demo.Username || req.Password != s.cfg.Demo.Password {
		return nil, ErrInvalidCredentials
	}
	return &LoginResponse{Username: req.Username, Redirect: DashboardLandingPath}, nil
}
