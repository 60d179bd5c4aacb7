package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Services  ServicesConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CookieConfig controls how the session cookie is written
type CookieConfig struct {
	Secure bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address      string
	AuditEnabled bool
}

// ServiceEndpoint holds the two addresses of an upstream service.
// InternalURL is the address this process dials; PublicURL is the
// browser-facing address and must never be used for forwarded calls.
type ServiceEndpoint struct {
	InternalURL string
	PublicURL   string
}

// ServicesConfig contains endpoints and timeouts for upstream services
type ServicesConfig struct {
	Backend      ServiceEndpoint
	Tools        ServiceEndpoint
	AuthTimeout  int // in seconds, login and profile calls
	ProxyTimeout int // in seconds, forwarded calls
}

// RateLimitConfig contains login rate limiter configuration
type RateLimitConfig struct {
	LoginLimit  int
	LoginPeriod int // in seconds
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
