package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ngo-backoffice/internal/domain/access"
)

const principalKey = "principal"

// TokenParser turns a bearer token into the authenticated caller.
type TokenParser interface {
	ParseToken(raw string) (access.Principal, error)
}

// Auth rejects requests without a valid bearer token.
func Auth(tp TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			p, err := tp.ParseToken(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// OptionalAuth lets anonymous requests through but still rejects a token
// that is present and invalid.
func OptionalAuth(tp TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			return Auth(tp)(next)(c)
		}
	}
}

// RequirePermission must run after Auth.
func RequirePermission(action access.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			if !p.Can(action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": access.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (access.Principal, bool) {
	p, ok := c.Get(principalKey).(access.Principal)
	return p, ok
}

// SetPrincipal is used by handler tests that bypass the middleware chain.
func SetPrincipal(c echo.Context, p access.Principal) { c.Set(principalKey, p) }

func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
