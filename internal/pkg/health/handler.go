package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports the health of a dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
// The basic /health endpoint is for load balancers; /health/ready also
// pings the registered dependency checkers.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, checkers map[string]Checker) {
	healthGroup := e.Group("/health")

	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"version":   version,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		deps := make(map[string]string, len(checkers))
		status := http.StatusOK
		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				deps[name] = "unhealthy"
				status = http.StatusServiceUnavailable
			} else {
				deps[name] = "ok"
			}
		}

		return c.JSON(status, map[string]interface{}{
			"status":       statusText(status),
			"service":      serviceName,
			"dependencies": deps,
		})
	})
}

func statusText(status int) string {
	if status == http.StatusOK {
		return "ready"
	}
	return "not ready"
}
