// internal/tests/helpers_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-admin/internal/config"
	"github.com/javajoker/catalog-admin/internal/router"
	"github.com/javajoker/catalog-admin/internal/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta json.RawMessage `json:"meta"`
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Catalog:     config.CatalogConfig{PlaceholderImage: "/images/shoes-image.png"},
		Demo:        config.DemoConfig{Username: "admin", Password: "admin"},
		Upload:      config.UploadConfig{MaxBytes: 1024},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		Log:         config.LogConfig{Level: "error", Format: "text"},
	}
}

func newTestRouter() (*gin.Engine, *router.Dependencies) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	deps := router.NewDependencies(cfg, services.NewCatalogStore(cfg.Catalog.PlaceholderImage))
	return router.Initialize(cfg, deps), deps
}

func doRequest(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}
