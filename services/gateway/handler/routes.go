package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/database"
	"github.com/docuhub/gateway/internal/pkg/middleware"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/services/gateway"
	httphandler "github.com/docuhub/gateway/services/gateway/handler/http"
)

// Handler wires the gateway handlers and route-level middleware
type Handler struct {
	cfg          *models.Config
	gatewayUC    gateway.GatewayUC
	authHandler  *httphandler.AuthHandler
	backendProxy *httphandler.ProxyHandler
	toolsProxy   *httphandler.ProxyHandler
	redisClient  *database.RedisClient
}

// NewHandler creates the route table owner. redisClient may be nil, in
// which case login rate limiting is disabled.
func NewHandler(cfg *models.Config, gatewayUC gateway.GatewayUC, redisClient *database.RedisClient) *Handler {
	return &Handler{
		cfg:          cfg,
		gatewayUC:    gatewayUC,
		authHandler:  httphandler.NewAuthHandler(gatewayUC, cfg.Cookie),
		backendProxy: httphandler.NewProxyHandler(gatewayUC, models.TargetBackend),
		toolsProxy:   httphandler.NewProxyHandler(gatewayUC, models.TargetTools),
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers the gateway API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	session := middleware.SessionMiddleware(h.cfg.JWT)
	adminGate := middleware.RequireAdmin(h.gatewayUC.RecordAdminDenial)

	// Auth routes
	auth := e.Group("/auth")
	auth.POST("/login", h.authHandler.Login, h.loginRateLimiter()...)
	auth.POST("/signup", h.authHandler.Signup)
	auth.POST("/logout", h.authHandler.Logout, session)
	auth.GET("/me", h.authHandler.Me, session)

	// Admin proxy routes: session plus admin gate, forwarded to the
	// primary backend
	admin := e.Group("/admin", session, adminGate)
	admin.GET("/users", h.backendProxy.Proxy)
	admin.POST("/users", h.backendProxy.Proxy)
	admin.GET("/users/:userID/roles", h.backendProxy.Proxy)
	admin.POST("/users/:userID/roles", h.backendProxy.Proxy)
	admin.GET("/roles/:roleID/permissions", h.backendProxy.Proxy)
	admin.POST("/roles/:roleID/permissions", h.backendProxy.Proxy)
	admin.GET("/permissions", h.backendProxy.Proxy)
	admin.POST("/permissions", h.backendProxy.Proxy)

	// Tool-invocation passthrough: any valid session
	tools := e.Group("/mcp", session)
	tools.GET("/*", h.toolsProxy.Proxy)
	tools.POST("/*", h.toolsProxy.Proxy)

	// Profile routes, including the raw multipart avatar upload
	profile := e.Group("/profile", session)
	profile.GET("/me", h.backendProxy.Proxy)
	profile.PUT("/me", h.backendProxy.Proxy)
	profile.POST("/me/avatar", h.backendProxy.Proxy)
}

// loginRateLimiter returns the redis-backed limiter for the login route,
// or nothing when redis is not configured
func (h *Handler) loginRateLimiter() []echo.MiddlewareFunc {
	if h.redisClient == nil || h.cfg.RateLimit.LoginLimit <= 0 {
		return nil
	}
	return []echo.MiddlewareFunc{
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "ratelimit:login",
			Limit:       h.cfg.RateLimit.LoginLimit,
			Period:      time.Duration(h.cfg.RateLimit.LoginPeriod) * time.Second,
		}),
	}
}
