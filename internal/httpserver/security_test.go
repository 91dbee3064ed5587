package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSecuredEngine(token string, limitPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := newSecurity(token, limitPerMin)
	engine := gin.New()
	engine.GET("/protected", s.RateLimit(), s.Auth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func get(engine *gin.Engine, bearer, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		engine := newSecuredEngine("secret", 0)
		if w := get(engine, "secret", ""); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		engine := newSecuredEngine("secret", 0)
		if w := get(engine, "nope", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		engine := newSecuredEngine("secret", 0)
		if w := get(engine, "", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("auth disabled when no token configured", func(t *testing.T) {
		engine := newSecuredEngine("", 0)
		if w := get(engine, "", ""); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10 req/min gives a burst of 1: the second immediate request from
	// the same client must be throttled.
	engine := newSecuredEngine("", 10)

	if w := get(engine, "", "10.0.0.1:1234"); w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}
	if w := get(engine, "", "10.0.0.1:1234"); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", w.Code)
	}

	// A different client has its own bucket.
	if w := get(engine, "", "10.0.0.2:1234"); w.Code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", w.Code)
	}
}
