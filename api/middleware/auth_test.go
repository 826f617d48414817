package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"afpromotion_server/config"
	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMiddleware() *Middleware {
	cfg := config.GetConfig()
	logger := config.InitializeLogger()
	return NewMiddleware(cfg, logger, nil)
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	token, err := lib.SignClaims(&structs.AuthClaims{
		Sub:   uuid.New(),
		Email: "user@example.com",
		Role:  role,
		Iat:   now,
		Exp:   now.Add(time.Minute),
		Jti:   uuid.New(),
	}, config.GetConfig().Auth.AccessTokenSecret)
	require.NoError(t, err)
	return token
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestUserAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	mw := testMiddleware()

	var called bool
	rec := httptest.NewRecorder()
	mw.UserAuthMiddleware(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest("GET", "/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestUserAuthMiddlewareAcceptsValidToken(t *testing.T) {
	mw := testMiddleware()

	var gotClaims *structs.AuthClaims
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: lib.AccessCookieName, Value: signTestToken(t, tables.RoleCustomer)})

	rec := httptest.NewRecorder()
	mw.UserAuthMiddleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, tables.RoleCustomer, gotClaims.Role)
}

func TestStaffAuthMiddlewareRejectsCustomer(t *testing.T) {
	mw := testMiddleware()

	var called bool
	req := httptest.NewRequest("GET", "/management/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: lib.AccessCookieName, Value: signTestToken(t, tables.RoleCustomer)})

	rec := httptest.NewRecorder()
	mw.StaffAuthMiddleware(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestStaffAuthMiddlewareAcceptsStaff(t *testing.T) {
	mw := testMiddleware()

	var called bool
	req := httptest.NewRequest("GET", "/management/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: lib.AccessCookieName, Value: signTestToken(t, tables.RoleStaff)})

	rec := httptest.NewRecorder()
	mw.StaffAuthMiddleware(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestCSRFMiddleware(t *testing.T) {
	mw := testMiddleware()
	csrf := mw.CSRFMiddleware()

	t.Run("get passes through", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		csrf(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest("GET", "/checkout", nil))
		assert.True(t, called)
	})

	t.Run("post without cookie rejected", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		csrf(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest("POST", "/checkout", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("post with mismatched header rejected", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token-a"})
		req.Header.Set("X-CSRF-Token", "token-b")

		rec := httptest.NewRecorder()
		csrf(okHandler(&called)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("post with matching pair accepted", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.AddCookie(&http.Cookie{Name: "csrf", Value: "token-a"})
		req.Header.Set("X-CSRF-Token", "token-a")

		rec := httptest.NewRecorder()
		csrf(okHandler(&called)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}
