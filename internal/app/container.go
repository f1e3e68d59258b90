package app

import (
	"context"
	"log"
	"os"

	"freelance-directory/internal/config"
	"freelance-directory/internal/delivery/gql"
	"freelance-directory/internal/infrastructure/cache"
	"freelance-directory/internal/infrastructure/metrics"
	"freelance-directory/internal/repository"
	"freelance-directory/internal/seeder"
	"freelance-directory/internal/usecase"
	"freelance-directory/internal/ws"

	"github.com/google/uuid"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config    config.Config
	Logger    *log.Logger
	Store     *repository.Store
	Directory *usecase.Directory
	Executor  *gql.Executor
	Hub       *ws.Hub
	Cache     *cache.Redis
	Metrics   *metrics.Metrics
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	}

	store := repository.NewStore()
	if cfg.App.SeedData {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, store); err != nil {
			return nil, err
		}
	}
	stats := store.Stats()
	logger.Printf("Directory ready | seeded=%t freelances=%d skills=%d assignments=%d links=%d",
		cfg.App.SeedData, stats.Freelances, stats.Skills, stats.Assignments, stats.Links)

	hub := ws.NewHub(logger)
	go hub.Run()

	dir := usecase.NewDirectory(store, usecase.WithEventPublisher(hub))
	m := metrics.New(dir.Stats)
	redis := cache.NewRedis(cfg.Cache, logger)

	opts := []gql.ExecutorOption{gql.WithObserver(m), gql.WithLogger(logger)}
	if redis.Enabled() {
		opts = append(opts, gql.WithQueryCache(redis, uuid.NewString()))
	}
	exec, err := gql.NewExecutor(dir, opts...)
	if err != nil {
		hub.Close()
		_ = redis.Close()
		return nil, err
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Directory: dir,
		Executor:  exec,
		Hub:       hub,
		Cache:     redis,
		Metrics:   m,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Hub.Close()
	return c.Cache.Close()
}
