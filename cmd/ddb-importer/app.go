package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/config"
	"github.com/KirkDiggler/rpg-importer/internal/engine/features"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/fixups"
	"github.com/KirkDiggler/rpg-importer/internal/lookup"
	importerorch "github.com/KirkDiggler/rpg-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-importer/internal/redis"
	"github.com/KirkDiggler/rpg-importer/internal/repositories/imports"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
	"github.com/KirkDiggler/rpg-importer/internal/templates"
)

// app is the wired import service and the resources it holds
type app struct {
	service importersvc.Service
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	ddbLookup := lookup.New(&lookup.Config{Logger: logger.Named("lookup")})

	renderer, err := templates.New(&templates.Config{
		Components: ddbLookup,
		Logger:     logger.Named("templates"),
	})
	if err != nil {
		return nil, err
	}

	featureEngine, err := features.New(&features.Config{
		Renderer:          renderer,
		Fixups:            fixups.New(&fixups.Config{Logger: logger.Named("fixups")}),
		Lookup:            ddbLookup,
		Logger:            logger.Named("engine"),
		PreferSnippet:     cfg.PreferSnippet,
		BackgroundEffects: features.BackgroundEffectsPolicy(cfg.BackgroundEffects),
	})
	if err != nil {
		return nil, err
	}

	repo, err := a.openRepository(ctx, cfg, logger.Named("imports"))
	if err != nil {
		a.Close()
		return nil, err
	}

	service, err := importerorch.New(&importerorch.Config{
		Engine:      featureEngine,
		IDGenerator: idgen.NewUUID("imp"),
		Repository:  repo,
		Clock:       clock.New(),
		Logger:      logger.Named("importer"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.service = service

	return a, nil
}

func (a *app) openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (imports.Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{UseTLS: cfg.RedisTLS})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		if err := redis.Ping(ctx, client); err != nil {
			return nil, err
		}
		return imports.NewRedis(&imports.RedisConfig{
			Client: client,
			TTL:    cfg.ImportTTL,
			Logger: logger,
		})
	case config.StoreSQLite:
		repo, err := imports.OpenSQLite(ctx, &imports.SQLiteConfig{
			Path:   cfg.SQLitePath,
			TTL:    cfg.ImportTTL,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	case config.StoreNone:
		return nil, nil
	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}

// Close releases the store connections
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}
