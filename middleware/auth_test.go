package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(secret string, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", APIKeyAuth(secret), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user")})
	})
	return r
}

func TestAPIKeyAuthMissingHeader(t *testing.T) {
	reached := false
	r := newAuthRouter("sekret", &reached)

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if reached {
		t.Error("handler ran without an API key")
	}
	if !strings.Contains(rr.Body.String(), "Missing or invalid API Key.") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestAPIKeyAuthWrongKey(t *testing.T) {
	reached := false
	r := newAuthRouter("sekret", &reached)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-API-Key", "not-the-secret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if reached {
		t.Error("handler ran with a wrong API key")
	}
}

func TestAPIKeyAuthMatch(t *testing.T) {
	reached := false
	r := newAuthRouter("sekret", &reached)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-API-Key", "sekret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !reached {
		t.Error("handler did not run with the right key")
	}
	if !strings.Contains(rr.Body.String(), "authenticated_user") {
		t.Errorf("authenticated marker missing: %q", rr.Body.String())
	}
}
