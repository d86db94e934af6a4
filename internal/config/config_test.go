package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 600, cfg.Server.WriteTimeout)
		require.False(t, cfg.Server.TrustProxy)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "authenticated", cfg.Auth.RequiredRole)
		require.Empty(t, cfg.Auth.JWTSecret)
		require.Equal(t, "info", cfg.Log.Level)
		require.True(t, cfg.Database.AutoMigrate)
		require.Equal(t, 10, cfg.Database.MaxOpenConns)
		require.Empty(t, cfg.Redis.Addr)
		require.Equal(t, int64(5), cfg.Redis.Limit)
		require.Equal(t, 10*time.Minute, cfg.Redis.Window)
		require.Equal(t, 60*time.Second, cfg.Generation.Timeout)
		require.Equal(t, 120, cfg.OpenAI.Timeout)
		require.Equal(t, 0, cfg.OpenAI.MaxRetries)
		require.Equal(t, 2, cfg.ImageHost.MaxRetries)
		require.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("SERVER_TRUST_PROXY", "true")
		t.Setenv("AUTH_JWT_SECRET", "jwt-secret")
		t.Setenv("AUTH_REQUIRED_ROLE", "service_role")
		t.Setenv("DATABASE_URL", "postgres://localhost/site")
		t.Setenv("DATABASE_AUTO_MIGRATE", "false")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("CONTACT_RATE_LIMIT", "3")
		t.Setenv("CONTACT_RATE_WINDOW", "1h")
		t.Setenv("GENERATION_TIMEOUT", "90s")
		t.Setenv("TELEGRAM_API_URL", "https://tg.example.com")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.True(t, cfg.Server.TrustProxy)
		require.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
		require.Equal(t, "service_role", cfg.Auth.RequiredRole)
		require.Equal(t, "postgres://localhost/site", cfg.Database.URL)
		require.False(t, cfg.Database.AutoMigrate)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, int64(3), cfg.Redis.Limit)
		require.Equal(t, time.Hour, cfg.Redis.Window)
		require.Equal(t, 90*time.Second, cfg.Generation.Timeout)
		require.Equal(t, "https://tg.example.com", cfg.Telegram.APIURL)
	})

	t.Run("should expose sub-configs for injection", func(t *testing.T) {
		os.Clearenv()
		cfg := config.Load()

		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.Server)
		require.Same(t, &cfg.Auth, deps.Auth)
		require.Same(t, &cfg.Generation, deps.Generation)
	})
}
