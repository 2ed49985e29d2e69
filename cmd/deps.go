package cmd

import (
	"context"
	"fmt"

	"url-reconciler/core/config"
	"url-reconciler/core/database"
	"url-reconciler/core/reconcile"
	"url-reconciler/core/resolver"
	"url-reconciler/core/storage"
	"url-reconciler/feature/sources"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// connections holds the clients opened for the configured sources.
type connections struct {
	deps sources.Deps
	pool *pgxpool.Pool
}

// Close releases pooled connections and the table source database handle.
func (c *connections) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
	if c.deps.DB != nil {
		if sqlDB, err := c.deps.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// connect opens only the clients needed by the kinds of both sources.
// When required is false, failures are logged and the client is left unset.
func connect(ctx context.Context, cfg *config.Config, logg *zap.Logger, required bool) (*connections, error) {
	conns := &connections{deps: sources.Deps{Bucket: cfg.Storage.Bucket}}
	kinds := sources.Kinds(cfg.SourceA, cfg.SourceB)

	fail := func(name string, err error) error {
		if required {
			return fmt.Errorf("%s connection required: %w", name, err)
		}
		logg.Warn("Optional connection failed", zap.String("connection", name), zap.Error(err))
		return nil
	}

	if kinds[sources.KindObject] {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			if err := fail("storage", err); err != nil {
				return nil, err
			}
		} else {
			conns.deps.Storage = client
		}
	}

	if kinds[sources.KindTable] {
		if db, err := database.Connect(cfg.Database); err != nil {
			if err := fail("database", err); err != nil {
				return nil, err
			}
		} else {
			conns.deps.DB = db
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if kinds[sources.KindPostgres] {
		if pool, err := sources.NewPool(ctx, cfg.Postgres); err != nil {
			if err := fail("postgres", err); err != nil {
				return nil, err
			}
		} else {
			conns.pool = pool
			conns.deps.Postgres = pool
			logg.Info("Connected to postgres")
		}
	}

	if kinds[sources.KindSheets] {
		if svc, err := sources.NewSheetsService(ctx, cfg.Sheets); err != nil {
			if err := fail("sheets", err); err != nil {
				return nil, err
			}
		} else {
			conns.deps.Sheets = svc
		}
	}

	return conns, nil
}

// buildSources creates both sources from configuration.
func buildSources(cfg *config.Config, deps sources.Deps) (sources.Source, sources.Source, error) {
	srcA, err := sources.FromConfig(cfg.SourceA, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("source_a: %w", err)
	}
	srcB, err := sources.FromConfig(cfg.SourceB, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("source_b: %w", err)
	}
	return srcA, srcB, nil
}

// newEngine wires the resolver and the engine with the given observers.
func newEngine(cfg *config.Config, observers ...reconcile.Observer) *reconcile.Engine {
	r := resolver.New(cfg.Resolver)
	return reconcile.NewEngine(r, cfg.Reconcile, reconcile.WithObserver(reconcile.Observers(observers...)))
}
