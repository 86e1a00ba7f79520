package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubService struct{}

func (stubService) Health() map[string]string { return map[string]string{"status": "up"} }
func (stubService) Close() error              { return nil }
func (stubService) GetDB() *gorm.DB           { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(stubService{}).RegisterRoutes()
}

func TestRootReturnsStatusMessage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] == "" {
		t.Error("expected a non-empty message field")
	}
}

func TestCORSAllowsConfiguredDevOrigin(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight response, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin to be echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials to be allowed, got %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestCORSOriginsConfigurableViaEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:4000, http://localhost:4001")

	origins := allowedOrigins()
	if len(origins) != 2 || origins[0] != "http://localhost:4000" || origins[1] != "http://localhost:4001" {
		t.Errorf("unexpected origins: %v", origins)
	}
}

func TestPageLimitFromEnv(t *testing.T) {
	t.Setenv("PAGE_LIMIT", "")
	if got := pageLimitFromEnv(); got != defaultPageLimit {
		t.Errorf("expected default %d, got %d", defaultPageLimit, got)
	}

	t.Setenv("PAGE_LIMIT", "50")
	if got := pageLimitFromEnv(); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}

	t.Setenv("PAGE_LIMIT", "-3")
	if got := pageLimitFromEnv(); got != defaultPageLimit {
		t.Errorf("expected default for negative value, got %d", got)
	}
}
