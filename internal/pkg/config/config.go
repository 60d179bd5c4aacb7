package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/docuhub/gateway/internal/pkg/models"
)

// InitConfig loads configuration from the environment. In the local
// environment the given .env file is loaded first so the process can run
// without an orchestrator injecting variables.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "docuhub-gateway")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8090)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 1440)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "docuhub-gateway")

	// Cookie config
	configs.Cookie.Secure = GetEnvAsBool("COOKIE_SECURE", configs.App.Environment != "local")

	// Redis config (optional, enables login rate limiting)
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config (optional, enables audit event publishing)
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.AuditEnabled = GetEnvAsBool("AUDIT_ENABLED", configs.NSQ.Address != "")

	// Upstream services. The forwarder always dials the internal URL;
	// the public URL is what a browser would use and is never dialed here.
	configs.Services.Backend.InternalURL = GetEnv("BACKEND_INTERNAL_URL", "http://localhost:8000")
	configs.Services.Backend.PublicURL = GetEnv("BACKEND_PUBLIC_URL", configs.Services.Backend.InternalURL)
	configs.Services.Tools.InternalURL = GetEnv("TOOLS_INTERNAL_URL", "http://localhost:8080")
	configs.Services.Tools.PublicURL = GetEnv("TOOLS_PUBLIC_URL", configs.Services.Tools.InternalURL)
	configs.Services.AuthTimeout = GetEnvAsInt("AUTH_TIMEOUT", 8)
	configs.Services.ProxyTimeout = GetEnvAsInt("UPSTREAM_TIMEOUT", 10)

	// Rate limit config
	configs.RateLimit.LoginLimit = GetEnvAsInt("LOGIN_RATE_LIMIT", 10)
	configs.RateLimit.LoginPeriod = GetEnvAsInt("LOGIN_RATE_PERIOD", 60)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
