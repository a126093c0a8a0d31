package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	r := newTestEngine(rl.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	rl.getVisitor("10.0.0.1")

	rl.cleanup(time.Now())
	assert.Len(t, rl.visitors, 1)

	rl.cleanup(time.Now().Add(visitorTTL + time.Second))
	assert.Empty(t, rl.visitors)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestEngine(CORS([]string{"http://localhost:3000"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	r := newTestEngine(RequestLogger())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestExtractResource(t *testing.T) {
	path := "/v1/products/drafts/6f1c1b9e-8d1c-4a55-9f0b-2f6f2f1f2a11/next"

	assert.Equal(t, "products", extractResourceType(path))
	assert.Equal(t, "6f1c1b9e-8d1c-4a55-9f0b-2f6f2f1f2a11", extractWizardID(path))
	assert.Equal(t, "uploads", extractResourceType("/uploads/a.png"))
	assert.Equal(t, "unknown", extractResourceType("/"))
	assert.Empty(t, extractWizardID("/v1/catalog"))
}

func TestExtractWizardIDOnlyForDrafts(t *testing.T) {
	id := "6f1c1b9e-8d1c-4a55-9f0b-2f6f2f1f2a11"

	assert.Equal(t, id, extractWizardID("/v1/products/drafts/"+id))
	assert.Empty(t, extractWizardID("/uploads/"+id))
	assert.Empty(t, extractWizardID("/uploads/"+id+".png"))
	assert.Empty(t, extractWizardID("/v1/products/"+id))
	assert.Empty(t, extractWizardID("/v1/products/drafts/not-a-uuid/next"))
	assert.Empty(t, extractWizardID("/v1/products/drafts"))
}
