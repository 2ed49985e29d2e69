package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"url-reconciler/core/reconcile"
)

// CSVSource reads a local CSV file.
type CSVSource struct {
	cfg Config
}

// NewCSVSource creates a source for cfg.Location.
func NewCSVSource(cfg Config) *CSVSource {
	return &CSVSource{cfg: cfg}
}

func (s *CSVSource) Name() string {
	return s.cfg.Describe()
}

// Load reads the file.
func (s *CSVSource) Load(ctx context.Context) ([]reconcile.URLPair, error) {
	f, err := os.Open(s.cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.cfg.Location, err)
	}
	defer f.Close()

	return readCSV(f, s.cfg)
}

// readCSV parses r with ragged rows allowed.
func readCSV(r io.Reader, cfg Config) ([]reconcile.URLPair, error) {
	idCol, urlCol, err := cfg.columns()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return pairsFromRecords(records, idCol, urlCol, cfg.StartRow), nil
}
