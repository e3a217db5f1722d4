package middleware

import (
	"strings"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	ContextAdminID   = "admin_id"
	ContextAdminRole = "admin_role"
)

// JWT authenticates admin requests from a Bearer token and stores the admin
// id and role on the request context.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return apperr.Authf("missing or malformed authorization header")
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, apperr.Authf("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return apperr.Authf("invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperr.Authf("invalid token claims")
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return apperr.Authf("invalid token claims")
			}
			role, _ := claims["role"].(string)

			c.Set(ContextAdminID, uint(sub))
			c.Set(ContextAdminRole, role)
			return next(c)
		}
	}
}

// RequireRole is the single authorization predicate for role-gated routes.
// A super-admin passes every gate.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get(ContextAdminRole).(string)
			if current != role && current != model.RoleSuperAdmin {
				return apperr.Forbiddenf("insufficient role")
			}
			return next(c)
		}
	}
}

// AdminID reads the authenticated admin's id set by JWT.
func AdminID(c echo.Context) uint {
	id, _ := c.Get(ContextAdminID).(uint)
	return id
}
