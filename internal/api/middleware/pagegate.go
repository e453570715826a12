package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/pkg/session"
)

// protectedPrefixes are the page paths that require an admin session.
var protectedPrefixes = []string{"/customers", "/dashboard"}

const loginPath = "/login"

// Decision is the outcome of the page-level gate for a navigation request.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

// Decide is the pure (path, claims) -> decision function behind PageGate.
// claims is nil when no valid session accompanies the request.
//
//	protected  + no/invalid session  -> redirect to login
//	protected  + non-admin session   -> redirect to login
//	protected  + admin session       -> allow
//	login page + admin session       -> redirect to dashboard
//	anything else                    -> allow
func Decide(path string, claims *session.Claims) Decision {
	isAdmin := claims != nil && claims.Role == domain.RoleAdmin

	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			if !isAdmin {
				return RedirectLogin
			}
			return Allow
		}
	}

	if path == loginPath && isAdmin {
		return RedirectDashboard
	}
	return Allow
}

// PageGate applies Decide to HTML navigation. Unlike Auth it never returns
// 401 — unauthenticated browsers are redirected to the login form.
func PageGate(issuer *session.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var claims *session.Claims
			if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				claims, _ = issuer.Read(cookie.Value)
			}

			switch Decide(c.Request().URL.Path, claims) {
			case RedirectLogin:
				return c.Redirect(http.StatusFound, loginPath)
			case RedirectDashboard:
				return c.Redirect(http.StatusFound, "/dashboard")
			default:
				return next(c)
			}
		}
	}
}
