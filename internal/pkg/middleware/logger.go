package middleware

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/constants"
	"github.com/docuhub/gateway/internal/pkg/logger"
)

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(constants.HeaderRequestID, requestID)
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs every request with latency, status and
// caller identity
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if id := c.Get(constants.ContextKeyUserID); id != nil {
				userID = fmt.Sprintf("%v", id)
			}

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("user_id", userID),
				logger.String("request_id", c.Response().Header().Get(constants.HeaderRequestID)),
			}

			switch {
			case statusCode >= 500:
				logger.Error("server error", fields...)
			case statusCode >= 400:
				logger.Warn("client error", fields...)
			default:
				logger.Info("request processed", fields...)
			}

			return err
		}
	}
}
