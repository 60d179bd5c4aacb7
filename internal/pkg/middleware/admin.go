package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/internal/utils"
)

// DenialAuditor is notified when an authenticated caller is refused admin
// access. It must not fail the request.
type DenialAuditor func(principal *models.Principal, path, remoteIP string)

// RequireAdmin is the authorization gate for administrative routes. It
// runs after SessionMiddleware and short-circuits with 403 before any
// upstream call is made. A missing principal still maps to 401 so "not
// logged in" stays distinguishable from "logged in but not allowed".
func RequireAdmin(onDenied DenialAuditor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFromContext(c)
			if principal == nil {
				return utils.UnauthorizedResponse(c, "authentication required")
			}

			if !principal.IsAdmin {
				logger.Warn("admin access denied",
					logger.String("user_id", principal.ID),
					logger.String("path", c.Request().URL.Path),
				)
				if onDenied != nil {
					onDenied(principal, c.Request().URL.Path, c.RealIP())
				}
				return utils.ForbiddenResponse(c, "admin access required")
			}

			return next(c)
		}
	}
}
