package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authProbe(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := ctxGetAdminEmail(r.Context())
		require.NoError(t, err)
		w.Write([]byte(email))
	})
}

func TestAuthenticateWithPlainPassword(t *testing.T) {
	middleware := newAuthMiddleware(map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "letmein",
	})
	handler := middleware.authenticate(authProbe(t))

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{"valid credentials", "admin@example.com", "letmein", http.StatusOK},
		{"wrong password", "admin@example.com", "guess", http.StatusUnauthorized},
		{"wrong email", "intruder@example.com", "letmein", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/auth/me", nil)
			req.SetBasicAuth(tt.email, tt.password)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.email, rec.Body.String())
			}
		})
	}
}

func TestAuthenticateWithoutHeader(t *testing.T) {
	middleware := newAuthMiddleware(map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "letmein",
	})
	handler := middleware.authenticate(authProbe(t))

	req := httptest.NewRequest("GET", "/api/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestAuthenticateWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	middleware := newAuthMiddleware(map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD_HASH": string(hash),
	})
	handler := middleware.authenticate(authProbe(t))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.SetBasicAuth("admin@example.com", "letmein")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.SetBasicAuth("admin@example.com", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnconfiguredAdmin(t *testing.T) {
	middleware := newAuthMiddleware(map[string]string{})
	handler := middleware.authenticate(authProbe(t))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.SetBasicAuth("", "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
