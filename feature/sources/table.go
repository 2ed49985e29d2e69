package sources

import (
	"context"
	"fmt"
	"strings"

	"url-reconciler/core/database"
	"url-reconciler/core/reconcile"

	"gorm.io/gorm"
)

// TableSource reads two columns of a SQL table through GORM.
type TableSource struct {
	db  *gorm.DB
	cfg Config
}

// NewTableSource creates a source reading cfg.Location from db.
func NewTableSource(db *gorm.DB, cfg Config) *TableSource {
	return &TableSource{db: db, cfg: cfg}
}

func (s *TableSource) Name() string {
	return s.cfg.Describe()
}

// Load checks that both columns exist, then reads every row.
func (s *TableSource) Load(ctx context.Context) ([]reconcile.URLPair, error) {
	if s.db == nil {
		return nil, fmt.Errorf("table source %s: no database connection", s.cfg.Location)
	}

	db := s.db.WithContext(ctx)
	if err := database.RequireColumns(db, s.cfg.Location, s.cfg.IDColumn, s.cfg.URLColumn); err != nil {
		return nil, err
	}

	var rows []map[string]any
	err := db.Table(s.cfg.Location).
		Select(s.cfg.IDColumn + ", " + s.cfg.URLColumn).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", s.cfg.Location, err)
	}

	ids := make([]any, len(rows))
	urls := make([]any, len(rows))
	for i, row := range rows {
		ids[i] = lookup(row, s.cfg.IDColumn)
		urls[i] = lookup(row, s.cfg.URLColumn)
	}
	return pairsFromColumns(ids, urls), nil
}

// lookup finds a column value regardless of the case the driver reports.
func lookup(row map[string]any, column string) any {
	if v, ok := row[column]; ok {
		return v
	}
	for k, v := range row {
		if strings.EqualFold(k, column) {
			return v
		}
	}
	return nil
}
