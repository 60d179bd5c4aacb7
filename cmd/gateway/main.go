package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/config"
	"github.com/docuhub/gateway/internal/pkg/database"
	"github.com/docuhub/gateway/internal/pkg/health"
	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/middleware"
	nsqpkg "github.com/docuhub/gateway/internal/pkg/nsq"
	"github.com/docuhub/gateway/internal/pkg/server"
	"github.com/docuhub/gateway/services/gateway"
	gatewayhttp "github.com/docuhub/gateway/services/gateway/gateway/http"
	gatewaynsq "github.com/docuhub/gateway/services/gateway/gateway/nsq"
	"github.com/docuhub/gateway/services/gateway/handler"
	"github.com/docuhub/gateway/services/gateway/usecase"
)

func main() {
	appName := "docuhub-gateway"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/gateway.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be configured")
	}

	// Redis is optional; without it login rate limiting is disabled
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
	}

	// NSQ is optional; without it audit publishing is disabled
	var auditGW gateway.AuditGW
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.AuditEnabled && configs.NSQ.Address != "" {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("failed to connect to NSQ", logger.Err(err))
		}
		defer nsqProducer.Stop()
		auditGW = gatewaynsq.NewAuditPublisher(nsqProducer)
	}

	// Upstream gateways
	authGW := gatewayhttp.NewAuthClient(
		configs.Services.Backend.InternalURL,
		time.Duration(configs.Services.AuthTimeout)*time.Second,
	)
	proxyGW := gatewayhttp.NewProxyClient(configs.Services)

	// Use case
	gatewayUC := usecase.NewGatewayUC(configs, authGW, proxyGW, auditGW)

	// Echo router and middleware
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())

	// Health endpoints
	checkers := map[string]health.Checker{}
	if redisClient != nil {
		checkers["redis"] = health.CheckerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx)
		})
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checkers)

	// Gateway routes
	h := handler.NewHandler(configs, gatewayUC, redisClient)
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("server error", logger.Err(err))
	}
}
