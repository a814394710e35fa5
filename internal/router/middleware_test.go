package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

func newUserAuthTestService() *service.UserAuthService {
	cfg := &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "user-test-secret-with-enough-entropy", ExpireHours: 72},
	}
	return service.NewUserAuthService(cfg, nil, nil)
}

func newProtectedTestRouter(t *testing.T, userAuthService *service.UserAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", UserJWTAuthMiddleware(userAuthService), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return engine
}

func TestUserAuthMiddlewareRequiresToken(t *testing.T) {
	engine := newProtectedTestRouter(t, newUserAuthTestService())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", recorder.Code)
	}
}

func TestUserAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	engine := newProtectedTestRouter(t, newUserAuthTestService())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status want 403 got %d", recorder.Code)
	}
}

func TestUserAuthMiddlewareRejectsAdminToken(t *testing.T) {
	userAuthService := newUserAuthTestService()
	engine := newProtectedTestRouter(t, userAuthService)

	adminService := service.NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "admin-test-secret-with-enough-entropy", ExpireHours: 24},
	})
	token, _, err := adminService.GenerateJWT("admin@ramanifashion.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status want 403 got %d", recorder.Code)
	}
}

func TestUserAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userAuthService := newUserAuthTestService()
	engine := newProtectedTestRouter(t, userAuthService)

	user := &models.User{Email: "priya@example.com"}
	user.ID = 42
	token, _, err := userAuthService.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	allowed := []string{"https://ramanifashion.com", "https://staging.ramanifashion.com"}

	if got := resolveAllowedOrigin("https://ramanifashion.com", allowed, false); got != "https://ramanifashion.com" {
		t.Fatalf("exact match: got %q", got)
	}
	if got := resolveAllowedOrigin("https://evil.example.com", allowed, false); got != "" {
		t.Fatalf("foreign origin: got %q", got)
	}
	if got := resolveAllowedOrigin("https://anything.example.com", []string{"*"}, false); got != "*" {
		t.Fatalf("wildcard: got %q", got)
	}
	// With credentials the wildcard must be echoed as the concrete
	// origin or browsers refuse the response.
	if got := resolveAllowedOrigin("https://anything.example.com", []string{"*"}, true); got != "https://anything.example.com" {
		t.Fatalf("wildcard with credentials: got %q", got)
	}
}

func TestRequestIDMiddlewarePropagatesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/ping", nil)
	request.Header.Set(requestIDHeader, "req-abc-123")
	engine.ServeHTTP(recorder, request)

	if got := recorder.Header().Get(requestIDHeader); got != "req-abc-123" {
		t.Fatalf("request id not propagated, got %q", got)
	}

	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest("GET", "/ping", nil))
	if recorder.Header().Get(requestIDHeader) == "" {
		t.Fatalf("request id not generated")
	}
}
