package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"CSV ok", Config{Kind: "csv", Location: "a.csv", IDColumn: "A", URLColumn: "C", StartRow: 6}, ""},
		{"Numeric columns", Config{Kind: "object", Location: "exports/", IDColumn: "1", URLColumn: "4", StartRow: 1}, ""},
		{"Upper case kind", Config{Kind: "CSV", Location: "a.csv", IDColumn: "A", URLColumn: "B", StartRow: 1}, ""},
		{"Sheets ok", Config{Kind: "sheets", Location: "abc", Sheet: "Links", IDColumn: "A", URLColumn: "D", StartRow: 1}, ""},
		{"Table ok", Config{Kind: "table", Location: "links", IDColumn: "id", URLColumn: "short_url"}, ""},
		{"Postgres schema", Config{Kind: "postgres", Location: "public.links", IDColumn: "id", URLColumn: "url"}, ""},
		{"Unknown kind", Config{Kind: "excel", Location: "x"}, "unknown source kind"},
		{"Missing location", Config{Kind: "csv", IDColumn: "A", URLColumn: "B", StartRow: 1}, "needs a location"},
		{"Bad id column", Config{Kind: "csv", Location: "a.csv", IDColumn: "A1", URLColumn: "B", StartRow: 1}, "id column"},
		{"Bad url column", Config{Kind: "csv", Location: "a.csv", IDColumn: "A", URLColumn: "", StartRow: 1}, "url column"},
		{"Zero start row", Config{Kind: "csv", Location: "a.csv", IDColumn: "A", URLColumn: "B", StartRow: 0}, "start row"},
		{"Sheets without tab", Config{Kind: "sheets", Location: "abc", IDColumn: "A", URLColumn: "B", StartRow: 1}, "sheet name"},
		{"Injected table", Config{Kind: "table", Location: "links; DROP TABLE x", IDColumn: "id", URLColumn: "url"}, "invalid table"},
		{"Bad sql column", Config{Kind: "postgres", Location: "links", IDColumn: "id", URLColumn: "url-1"}, "invalid url column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPairsFromColumns(t *testing.T) {
	ids := []any{"1", " 2 ", "3.0", "abc", "", 4.5, float64(5), "6"}
	urls := []any{"https://a/1", "https://a/2", "https://a/3", "https://a/x", "https://a/y", "https://a/z", ""}

	pairs := pairsFromColumns(ids, urls)

	var got []int64
	for _, p := range pairs {
		got = append(got, p.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 5, 6}, got)
	assert.Equal(t, "https://a/3", pairs[2].URL)
	assert.Equal(t, "", pairs[3].URL)
	// url column shorter than id column
	assert.Equal(t, "", pairs[4].URL)
}

func TestPairsFromRecords(t *testing.T) {
	records := [][]string{
		{"title"},
		{"id", "name", "url"},
		{"10", "x", "https://a/10"},
		{"11"},
	}

	pairs := pairsFromRecords(records, 0, 2, 3)

	assert.Len(t, pairs, 2)
	assert.Equal(t, int64(10), pairs[0].ID)
	assert.Equal(t, "https://a/10", pairs[0].URL)
	assert.Equal(t, "", pairs[1].URL)
}
