package sources

import (
	"fmt"
	"regexp"
	"strings"

	"url-reconciler/core/utils"
)

// Kind selects where a source reads from.
type Kind string

const (
	KindCSV      Kind = "csv"
	KindObject   Kind = "object"
	KindTable    Kind = "table"
	KindPostgres Kind = "postgres"
	KindSheets   Kind = "sheets"
)

// Config addresses one URL list.
type Config struct {
	// Kind is one of csv, object, table, postgres, sheets.
	Kind string `mapstructure:"kind" default:"csv"`
	// Location is the file path, object key or prefix, table name, or spreadsheet URL/ID.
	Location string `mapstructure:"location" default:""`
	// Sheet is the worksheet (tab) name for sheets sources.
	Sheet string `mapstructure:"sheet" default:""`
	// IDColumn is a letter or 1-based number for tabular kinds, a column name for SQL kinds.
	IDColumn string `mapstructure:"id_column" default:"A"`
	// URLColumn is a letter or 1-based number for tabular kinds, a column name for SQL kinds.
	URLColumn string `mapstructure:"url_column" default:"B"`
	// StartRow is the 1-based first data row for tabular kinds.
	StartRow int `mapstructure:"start_row" default:"1"`
}

// PostgresConfig holds the Postgres connection used by postgres sources.
type PostgresConfig struct {
	// URL is a libpq connection string or URL. Empty disables postgres sources.
	URL string `mapstructure:"url" default:""`
	// MaxConns caps the pool size.
	MaxConns int `mapstructure:"max_conns" default:"4"`
}

// SheetsConfig holds Google API credentials used by sheets sources.
type SheetsConfig struct {
	// CredentialsFile is a service account JSON key.
	CredentialsFile string `mapstructure:"credentials_file" default:"service_account.json"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// IsTabular reports whether columns are addressed by letter or number.
func (k Kind) IsTabular() bool {
	return k == KindCSV || k == KindObject || k == KindSheets
}

// Validate checks the addressing without touching the source.
func (c Config) Validate() error {
	kind := Kind(strings.ToLower(c.Kind))
	switch kind {
	case KindCSV, KindObject, KindTable, KindPostgres, KindSheets:
	default:
		return fmt.Errorf("unknown source kind %q", c.Kind)
	}

	if strings.TrimSpace(c.Location) == "" {
		return fmt.Errorf("%s source needs a location", kind)
	}

	if kind.IsTabular() {
		if _, err := utils.ColumnIndex(c.IDColumn); err != nil {
			return fmt.Errorf("id column: %w", err)
		}
		if _, err := utils.ColumnIndex(c.URLColumn); err != nil {
			return fmt.Errorf("url column: %w", err)
		}
		if c.StartRow < 1 {
			return fmt.Errorf("start row must be 1 or greater, got %d", c.StartRow)
		}
		if kind == KindSheets && strings.TrimSpace(c.Sheet) == "" {
			return fmt.Errorf("sheets source needs a sheet name")
		}
		return nil
	}

	for name, ident := range map[string]string{"table": c.Location, "id column": c.IDColumn, "url column": c.URLColumn} {
		if !identifierPattern.MatchString(ident) {
			return fmt.Errorf("invalid %s %q", name, ident)
		}
	}
	return nil
}

// columns returns the 0-based id and url column indices of a tabular source.
func (c Config) columns() (idCol, urlCol int, err error) {
	if idCol, err = utils.ColumnIndex(c.IDColumn); err != nil {
		return 0, 0, err
	}
	if urlCol, err = utils.ColumnIndex(c.URLColumn); err != nil {
		return 0, 0, err
	}
	return idCol, urlCol, nil
}

// Describe returns a short human-readable address, for logs.
func (c Config) Describe() string {
	if Kind(strings.ToLower(c.Kind)) == KindSheets {
		return fmt.Sprintf("sheets:%s!%s", c.Sheet, c.Location)
	}
	return fmt.Sprintf("%s:%s", strings.ToLower(c.Kind), c.Location)
}
