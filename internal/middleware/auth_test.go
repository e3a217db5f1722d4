package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func signedToken(t *testing.T, role string, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  float64(42),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func runAuthed(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h(c)
}

func TestJWT(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		err := runAuthed(t, "", JWT(testSecret))
		require.Error(t, err)
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, model.RoleAdmin, "other-secret", time.Hour)
		err := runAuthed(t, "Bearer "+token, JWT(testSecret))
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, model.RoleAdmin, testSecret, -time.Hour)
		err := runAuthed(t, "Bearer "+token, JWT(testSecret))
		require.Error(t, err)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token := signedToken(t, model.RoleAdmin, testSecret, time.Hour)
		require.NoError(t, runAuthed(t, "Bearer "+token, JWT(testSecret)))
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("admin blocked from super-admin routes", func(t *testing.T) {
		token := signedToken(t, model.RoleAdmin, testSecret, time.Hour)
		err := runAuthed(t, "Bearer "+token, JWT(testSecret), RequireRole(model.RoleSuperAdmin))
		require.Error(t, err)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("super-admin passes admin routes", func(t *testing.T) {
		token := signedToken(t, model.RoleSuperAdmin, testSecret, time.Hour)
		require.NoError(t, runAuthed(t, "Bearer "+token, JWT(testSecret), RequireRole(model.RoleAdmin)))
	})

	t.Run("matching role passes", func(t *testing.T) {
		token := signedToken(t, model.RoleAdmin, testSecret, time.Hour)
		require.NoError(t, runAuthed(t, "Bearer "+token, JWT(testSecret), RequireRole(model.RoleAdmin)))
	})
}
