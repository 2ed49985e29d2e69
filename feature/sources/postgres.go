package sources

import (
	"context"
	"fmt"
	"strings"

	"url-reconciler/core/reconcile"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool used by PostgresSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads two columns of a Postgres table.
type PostgresSource struct {
	db  Querier
	cfg Config
}

// NewPostgresSource creates a source reading cfg.Location through db.
func NewPostgresSource(db Querier, cfg Config) *PostgresSource {
	return &PostgresSource{db: db, cfg: cfg}
}

// NewPool opens a pgx pool for postgres sources.
func NewPool(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

func (s *PostgresSource) Name() string {
	return s.cfg.Describe()
}

// Query returns the SELECT statement used by Load, with quoted identifiers.
func (s *PostgresSource) Query() string {
	table := pgx.Identifier(strings.Split(s.cfg.Location, ".")).Sanitize()
	return fmt.Sprintf("SELECT %s, %s FROM %s",
		pgx.Identifier{s.cfg.IDColumn}.Sanitize(),
		pgx.Identifier{s.cfg.URLColumn}.Sanitize(),
		table,
	)
}

// Load reads every row.
func (s *PostgresSource) Load(ctx context.Context) ([]reconcile.URLPair, error) {
	rows, err := s.db.Query(ctx, s.Query())
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.cfg.Location, err)
	}
	defer rows.Close()

	var ids, urls []any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", s.cfg.Location, err)
		}
		if len(values) < 2 {
			return nil, fmt.Errorf("expected 2 columns from %s, got %d", s.cfg.Location, len(values))
		}
		ids = append(ids, values[0])
		urls = append(urls, values[1])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.cfg.Location, err)
	}
	return pairsFromColumns(ids, urls), nil
}
