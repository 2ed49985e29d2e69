package sources

import (
	"context"

	"url-reconciler/core/reconcile"
	"url-reconciler/core/utils"
)

// Source loads one side of a reconciliation.
type Source interface {
	// Name describes the source for logs.
	Name() string
	// Load reads every usable row.
	Load(ctx context.Context) ([]reconcile.URLPair, error)
}

// pairsFromColumns zips an id column with a url column. A url column shorter
// than the id column yields blank URLs, as spreadsheets trim trailing empty cells.
func pairsFromColumns(ids, urls []any) []reconcile.URLPair {
	pairs := make([]reconcile.URLPair, 0, len(ids))
	for i, raw := range ids {
		id, ok := utils.ToID(raw)
		if !ok {
			continue
		}
		var u string
		if i < len(urls) {
			u = utils.ToString(urls[i])
		}
		pairs = append(pairs, reconcile.URLPair{ID: id, URL: u})
	}
	return pairs
}

// pairsFromRecords extracts columns from row-major records, starting at startRow (1-based).
func pairsFromRecords(records [][]string, idCol, urlCol, startRow int) []reconcile.URLPair {
	if startRow < 1 {
		startRow = 1
	}
	var ids, urls []any
	for i := startRow - 1; i < len(records); i++ {
		row := records[i]
		ids = append(ids, cell(row, idCol))
		urls = append(urls, cell(row, urlCol))
	}
	return pairsFromColumns(ids, urls)
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
