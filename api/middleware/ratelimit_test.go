package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitForEndpoint(t *testing.T) {
	mw := testMiddleware()
	cfg := mw.cfg.RateLimit

	tests := []struct {
		path      string
		wantLimit int
	}{
		{"/auth/login", cfg.AuthLimit},
		{"/auth/register", cfg.AuthLimit},
		{"/auth/refresh", cfg.AuthLimit},
		{"/management/dashboard", cfg.StaffLimit},
		{"/management/sales-report/export", cfg.StaffLimit},
		{"/katalog", cfg.GeneralLimit},
		{"/cart/add/abc", cfg.GeneralLimit},
		{"/auth/me", cfg.GeneralLimit},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			limit, window := mw.getRateLimitForEndpoint(tt.path)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Greater(t, window.Seconds(), 0.0)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	mw := testMiddleware()

	t.Run("forwarded for wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		r.Header.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "203.0.113.9", mw.getClientIP(r))
	})

	t.Run("real ip fallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "198.51.100.2", mw.getClientIP(r))
	})

	t.Run("remote addr strips port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "192.0.2.7:54321"
		assert.Equal(t, "192.0.2.7", mw.getClientIP(r))
	})
}
