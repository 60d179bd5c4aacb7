package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/constants"
	jwtpkg "github.com/docuhub/gateway/internal/pkg/jwt"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/internal/utils"
)

// SessionMiddleware resolves the session token from the request and puts
// the reconstructed principal on the context. The token is read from the
// session cookie, or from a bearer Authorization header for non-browser
// callers. Absent, malformed, expired and forged tokens all produce the
// same 401 so callers cannot distinguish the failure modes.
func SessionMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractSessionToken(c)
			if tokenString == "" {
				return utils.UnauthorizedResponse(c, "authentication required")
			}

			principal, err := jwtpkg.ValidateToken(tokenString, cfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "authentication required")
			}

			c.Set(constants.ContextKeyPrincipal, principal)
			c.Set(constants.ContextKeyUserID, principal.ID)

			return next(c)
		}
	}
}

// extractSessionToken finds the session token in the cookie or the
// Authorization header
func extractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

// PrincipalFromContext returns the principal resolved by
// SessionMiddleware, or nil when the route is not session-protected
func PrincipalFromContext(c echo.Context) *models.Principal {
	principal, _ := c.Get(constants.ContextKeyPrincipal).(*models.Principal)
	return principal
}
