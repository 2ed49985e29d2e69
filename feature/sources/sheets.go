package sources

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"url-reconciler/core/reconcile"
	"url-reconciler/core/utils"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SheetsSource reads two columns of a Google Sheets tab.
type SheetsSource struct {
	svc *sheets.Service
	cfg Config
}

// NewSheetsService creates a read-only Sheets client. opts are appended, so
// tests can point it at a local endpoint.
func NewSheetsService(ctx context.Context, cfg SheetsConfig, opts ...option.ClientOption) (*sheets.Service, error) {
	base := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		base = append(base, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := sheets.NewService(ctx, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return svc, nil
}

// NewSheetsSource creates a source reading cfg.Sheet of the spreadsheet at cfg.Location.
func NewSheetsSource(svc *sheets.Service, cfg Config) *SheetsSource {
	return &SheetsSource{svc: svc, cfg: cfg}
}

func (s *SheetsSource) Name() string {
	return s.cfg.Describe()
}

// SpreadsheetID extracts the ID from a spreadsheet URL, or returns location as-is.
func SpreadsheetID(location string) string {
	if m := spreadsheetURLPattern.FindStringSubmatch(location); m != nil {
		return m[1]
	}
	return strings.TrimSpace(location)
}

// columnRange builds an A1 range for one column from the start row down.
func (s *SheetsSource) columnRange(column string) (string, error) {
	idx, err := utils.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	letter := utils.ColumnLetter(idx)
	sheet := strings.ReplaceAll(s.cfg.Sheet, "'", "''")
	return fmt.Sprintf("'%s'!%s%d:%s", sheet, letter, s.cfg.StartRow, letter), nil
}

// Load fetches both columns in one request.
func (s *SheetsSource) Load(ctx context.Context) ([]reconcile.URLPair, error) {
	idRange, err := s.columnRange(s.cfg.IDColumn)
	if err != nil {
		return nil, fmt.Errorf("id column: %w", err)
	}
	urlRange, err := s.columnRange(s.cfg.URLColumn)
	if err != nil {
		return nil, fmt.Errorf("url column: %w", err)
	}

	resp, err := s.svc.Spreadsheets.Values.BatchGet(SpreadsheetID(s.cfg.Location)).
		Ranges(idRange, urlRange).
		MajorDimension("COLUMNS").
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Name(), err)
	}
	if len(resp.ValueRanges) != 2 {
		return nil, fmt.Errorf("expected 2 ranges from %s, got %d", s.Name(), len(resp.ValueRanges))
	}

	return pairsFromColumns(firstColumn(resp.ValueRanges[0]), firstColumn(resp.ValueRanges[1])), nil
}

func firstColumn(vr *sheets.ValueRange) []any {
	if vr == nil || len(vr.Values) == 0 {
		return nil
	}
	return vr.Values[0]
}
