package sources

import (
	"context"
	"fmt"
	"strings"

	"url-reconciler/core/reconcile"
	"url-reconciler/core/storage"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/sheets/v4"
	"gorm.io/gorm"
)

// Deps holds the connections sources may need. Only the ones matching the
// configured kinds must be set.
type Deps struct {
	Storage  storage.Client
	Bucket   string
	DB       *gorm.DB
	Postgres Querier
	Sheets   *sheets.Service
}

// FromConfig validates cfg and builds the matching source.
func FromConfig(cfg Config, deps Deps) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch Kind(strings.ToLower(cfg.Kind)) {
	case KindCSV:
		return NewCSVSource(cfg), nil
	case KindObject:
		if deps.Storage == nil {
			return nil, fmt.Errorf("object source %s: storage is not configured", cfg.Location)
		}
		return NewObjectSource(deps.Storage, deps.Bucket, cfg), nil
	case KindTable:
		if deps.DB == nil {
			return nil, fmt.Errorf("table source %s: database is not configured", cfg.Location)
		}
		return NewTableSource(deps.DB, cfg), nil
	case KindPostgres:
		if deps.Postgres == nil {
			return nil, fmt.Errorf("postgres source %s: postgres is not configured", cfg.Location)
		}
		return NewPostgresSource(deps.Postgres, cfg), nil
	case KindSheets:
		if deps.Sheets == nil {
			return nil, fmt.Errorf("sheets source %s: sheets client is not configured", cfg.Location)
		}
		return NewSheetsSource(deps.Sheets, cfg), nil
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

// Kinds returns the kinds used by cfgs, lowercased and deduplicated.
func Kinds(cfgs ...Config) map[Kind]bool {
	kinds := make(map[Kind]bool, len(cfgs))
	for _, c := range cfgs {
		kinds[Kind(strings.ToLower(c.Kind))] = true
	}
	return kinds
}

// LoadBoth loads two sources concurrently.
func LoadBoth(ctx context.Context, a, b Source) (pairsA, pairsB []reconcile.URLPair, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if pairsA, err = a.Load(gctx); err != nil {
			return fmt.Errorf("source a (%s): %w", a.Name(), err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if pairsB, err = b.Load(gctx); err != nil {
			return fmt.Errorf("source b (%s): %w", b.Name(), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pairsA, pairsB, nil
}
