package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/feequote/internal/config"
	"github.com/davidbz/feequote/internal/domain"
	"github.com/davidbz/feequote/internal/http"
	"github.com/davidbz/feequote/internal/http/middleware"
	"github.com/davidbz/feequote/internal/observability"
	"github.com/davidbz/feequote/internal/store/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) error {
		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case startErr := <-errCh:
			return startErr
		case <-stop:
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		}
	})
	if err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
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
	if err := container.Provide(func(cfg *config.Config) domain.FeeSchedule {
		return cfg.FeeSchedule()
	}); err != nil {
		log.Fatalf("Failed to provide fee schedule: %v", err)
	}

	// Observability
	if err := container.Provide(func(cfg *config.LogConfig) (*zap.Logger, error) {
		return observability.InitLogger(cfg.Level, cfg.Development)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Clock and identifiers
	if err := container.Provide(func() domain.Clock { return domain.SystemClock{} }); err != nil {
		log.Fatalf("Failed to provide clock: %v", err)
	}
	if err := container.Provide(func() domain.IDGenerator { return domain.UUIDGenerator{} }); err != nil {
		log.Fatalf("Failed to provide id generator: %v", err)
	}

	// Stores
	if err := container.Provide(func(cfg *config.StoreConfig, redisCfg *config.RedisConfig) (*goredis.Client, error) {
		if cfg.Backend != config.StoreRedis {
			return nil, nil //nolint:nilnil // memory backend runs without redis
		}
		return redis.NewClient(redisCfg)
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(provideStores); err != nil {
		log.Fatalf("Failed to provide stores: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(cfg *config.QuoteConfig) (*domain.QuoteSigner, error) {
		return domain.NewQuoteSigner(cfg.SigningSecret)
	}); err != nil {
		log.Fatalf("Failed to provide quote signer: %v", err)
	}
	if err := container.Provide(domain.NewFeeCalculator); err != nil {
		log.Fatalf("Failed to provide fee calculator: %v", err)
	}
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

type storeParams struct {
	dig.In

	Store *config.StoreConfig
	Clock domain.Clock
	Redis *goredis.Client
}

type storeResult struct {
	dig.Out

	Quotes   domain.QuoteStore
	Profiles domain.ProfileDirectory
}

// provideStores selects the quote and profile backends.
func provideStores(p storeParams) (storeResult, error) {
	switch p.Store.Backend {
	case config.StoreMemory:
		return storeResult{
			Quotes:   domain.NewInMemoryQuoteStore(p.Clock),
			Profiles: domain.NewInMemoryProfileDirectory(),
		}, nil
	case config.StoreRedis:
		if p.Redis == nil {
			return storeResult{}, errors.New("redis backend selected but no client available")
		}
		return storeResult{
			Quotes:   redis.NewQuoteStore(p.Redis),
			Profiles: redis.NewProfileDirectory(p.Redis),
		}, nil
	default:
		return storeResult{}, fmt.Errorf("unknown store backend %q", p.Store.Backend)
	}
}
