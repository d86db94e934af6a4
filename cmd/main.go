package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/nepersonaj/internal/cache/redis"
	"github.com/davidbz/nepersonaj/internal/config"
	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/httpserver"
	"github.com/davidbz/nepersonaj/internal/httpserver/middleware"
	"github.com/davidbz/nepersonaj/internal/imagehost/imgbb"
	"github.com/davidbz/nepersonaj/internal/messaging/telegram"
	"github.com/davidbz/nepersonaj/internal/metrics"
	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/provider/image"
	"github.com/davidbz/nepersonaj/internal/provider/openai"
	"github.com/davidbz/nepersonaj/internal/provider/registry"
	"github.com/davidbz/nepersonaj/internal/provider/text"
	"github.com/davidbz/nepersonaj/internal/provider/transport"
	"github.com/davidbz/nepersonaj/internal/queue"
	"github.com/davidbz/nepersonaj/internal/storage/postgres"
)

const contactRateScope = "contact"

func main() {
	container := buildContainer()

	if err := container.Invoke(run); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

// run serves HTTP until SIGINT or SIGTERM, then drains requests and releases resources.
func run(
	server *httpserver.Server,
	q *queue.Queue,
	db *sql.DB,
	redisClient *goredis.Client,
	logger *zap.Logger,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	q.Close()
	if closeErr := db.Close(); closeErr != nil {
		logger.Warn("failed to close database", zap.Error(closeErr))
	}
	if redisClient != nil {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Warn("failed to close redis", zap.Error(closeErr))
		}
	}
	logger.Info("shutdown complete")
	_ = logger.Sync()

	return err
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability. The logger is built first so every later constructor logs through it.
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if err := container.Provide(metrics.NewRecorder); err != nil {
		log.Fatalf("Failed to provide metrics recorder: %v", err)
	}
	if err := container.Provide(func(recorder *metrics.Recorder) domain.EventPublisher {
		return observability.NewEventBus(recorder)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	provideStorage(container)
	provideProviders(container)
	provideIntegrations(container)

	// Domain Services
	if err := container.Provide(func() *validator.Validate {
		return validator.New(validator.WithRequiredStructEnabled())
	}); err != nil {
		log.Fatalf("Failed to provide validator: %v", err)
	}
	if err := container.Provide(queue.New); err != nil {
		log.Fatalf("Failed to provide generation queue: %v", err)
	}
	if err := container.Provide(domain.NewGenerationService); err != nil {
		log.Fatalf("Failed to provide generation service: %v", err)
	}
	if err := container.Provide(domain.NewContactService); err != nil {
		log.Fatalf("Failed to provide contact service: %v", err)
	}

	provideHTTP(container)

	return container
}

func provideStorage(container *dig.Container) {
	if err := container.Provide(func(cfg *postgres.Config) (*sql.DB, error) {
		ctx := context.Background()

		db, err := postgres.Open(ctx, *cfg)
		if err != nil {
			return nil, err
		}

		if cfg.AutoMigrate {
			if err = postgres.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}

		return db, nil
	}); err != nil {
		log.Fatalf("Failed to provide database: %v", err)
	}

	if err := container.Provide(func(db *sql.DB) (domain.SettingsStore, error) {
		return postgres.NewSettingsStore(db)
	}); err != nil {
		log.Fatalf("Failed to provide settings store: %v", err)
	}
	if err := container.Provide(func(db *sql.DB) (domain.PostStore, error) {
		return postgres.NewPostStore(db)
	}); err != nil {
		log.Fatalf("Failed to provide post store: %v", err)
	}
	if err := container.Provide(func(db *sql.DB) (domain.ProjectStore, error) {
		return postgres.NewProjectStore(db)
	}); err != nil {
		log.Fatalf("Failed to provide project store: %v", err)
	}

	// Redis is optional. Without it the contact form is not throttled.
	if err := container.Provide(func(cfg *redis.Config) (*goredis.Client, error) {
		if cfg.Addr == "" {
			observability.FromContext(context.Background()).Info("redis not configured, contact rate limiting disabled")
			return nil, nil
		}
		return redis.NewClient(context.Background(), *cfg)
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(func(client *goredis.Client, cfg *redis.Config) (domain.RateLimiter, error) {
		if client == nil {
			return nil, nil
		}
		return redis.NewFixedWindowLimiter(client, contactRateScope, cfg.Limit, cfg.Window)
	}); err != nil {
		log.Fatalf("Failed to provide rate limiter: %v", err)
	}
}

func provideProviders(container *dig.Container) {
	if err := container.Provide(func(cfg *transport.Config) domain.Transport {
		return transport.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide transport: %v", err)
	}

	// Text Provider Registry
	if err := container.Provide(func() (domain.TextProviderRegistry, error) {
		ctx := context.Background()
		reg := registry.NewRegistry[domain.TextProvider]()

		for _, provider := range []domain.TextProvider{
			text.NewOpenAI(),
			text.NewDeepSeek(),
			text.NewAnthropic(),
			text.NewCustom(),
		} {
			if err := reg.Register(ctx, provider); err != nil {
				return nil, fmt.Errorf("failed to register text provider: %w", err)
			}
		}

		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide text registry: %v", err)
	}

	// Image Provider Registry
	if err := container.Provide(func(
		cfg *openai.Config,
		tr domain.Transport,
	) (domain.ImageProviderRegistry, error) {
		ctx := context.Background()
		reg := registry.NewRegistry[domain.ImageProvider]()

		stability, err := image.NewStability(tr)
		if err != nil {
			return nil, err
		}
		custom, err := image.NewCustom(tr)
		if err != nil {
			return nil, err
		}

		for _, provider := range []domain.ImageProvider{
			openai.NewProvider(*cfg),
			stability,
			custom,
		} {
			if err = reg.Register(ctx, provider); err != nil {
				return nil, fmt.Errorf("failed to register image provider: %w", err)
			}
		}

		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide image registry: %v", err)
	}
}

func provideIntegrations(container *dig.Container) {
	if err := container.Provide(func(cfg *imgbb.Config) domain.ImageHost {
		return imgbb.NewUploader(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide image host: %v", err)
	}
	if err := container.Provide(func(cfg *telegram.Config) domain.Messenger {
		return telegram.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide messenger: %v", err)
	}
}

func provideHTTP(container *dig.Container) {
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.NewAuth); err != nil {
		log.Fatalf("Failed to provide auth middleware: %v", err)
	}
	if err := container.Provide(func(
		handler *httpserver.Handler,
		auth *middleware.Auth,
		cors *config.CORSConfig,
		server *config.ServerConfig,
		recorder *metrics.Recorder,
	) http.Handler {
		chain := middleware.BuildMiddlewareChain(cors, server, recorder)
		return httpserver.NewRouter(handler, auth, chain, recorder.Handler())
	}); err != nil {
		log.Fatalf("Failed to provide router: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}
}
