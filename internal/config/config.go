package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/nepersonaj/internal/cache/redis"
	"github.com/davidbz/nepersonaj/internal/imagehost/imgbb"
	"github.com/davidbz/nepersonaj/internal/messaging/telegram"
	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/provider/openai"
	"github.com/davidbz/nepersonaj/internal/provider/transport"
	"github.com/davidbz/nepersonaj/internal/storage/postgres"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Auth       AuthConfig
	Log        observability.LogConfig
	Database   postgres.Config
	Redis      redis.Config
	Generation transport.Config
	OpenAI     openai.Config
	ImageHost  imgbb.Config
	Telegram   telegram.Config
}

// ServerConfig contains HTTP server settings.
// WriteTimeout covers whole SSE generation streams.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"600"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15"`
	MaxUploadMB     int `env:"SERVER_MAX_UPLOAD_MB"    envDefault:"10"`

	// TrustProxy takes the client address from X-Forwarded-For style headers.
	// Enable only behind a proxy that overwrites them.
	TrustProxy bool `env:"SERVER_TRUST_PROXY" envDefault:"false"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// AuthConfig contains admin token verification settings.
// Tokens are HS256 JWTs issued by the hosted auth backend.
type AuthConfig struct {
	JWTSecret    string `env:"AUTH_JWT_SECRET"`
	RequiredRole string `env:"AUTH_REQUIRED_ROLE" envDefault:"authenticated"`
	Issuer       string `env:"AUTH_ISSUER"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server     *ServerConfig
	CORS       *CORSConfig
	Auth       *AuthConfig
	Log        *observability.LogConfig
	Database   *postgres.Config
	Redis      *redis.Config
	Generation *transport.Config
	OpenAI     *openai.Config
	ImageHost  *imgbb.Config
	Telegram   *telegram.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		Auth:       &cfg.Auth,
		Log:        &cfg.Log,
		Database:   &cfg.Database,
		Redis:      &cfg.Redis,
		Generation: &cfg.Generation,
		OpenAI:     &cfg.OpenAI,
		ImageHost:  &cfg.ImageHost,
		Telegram:   &cfg.Telegram,
	}
}
