package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace server-side and answers with a generic 500. Stack traces never
// reach the response body.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					logger.Error("panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
