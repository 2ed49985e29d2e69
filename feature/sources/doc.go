// Package sources loads (identifier, URL) pairs from the places the two URL
// lists live.
//
// Every source turns its rows into reconcile.URLPair values the same way:
// the identifier cell is coerced to an integer (" 12 ", "12.0" and 12.0 are
// all 12) and rows whose identifier is blank, fractional or non-numeric are
// dropped. Blank URL cells are kept; the resolver passes them through.
// Rows are returned in source order; the engine sorts.
//
// # Kinds
//
//   - csv: a local CSV file. Columns are letters or 1-based numbers.
//   - object: a CSV export in object storage. A Location ending in "/" picks
//     the newest .csv under that prefix.
//   - table: a MySQL or SQLite table through GORM. Columns are column names.
//   - postgres: a Postgres table through pgx. Columns are column names.
//   - sheets: a Google Sheets tab. Location is the spreadsheet URL or ID.
//
// Config.Validate checks addressing before any I/O.
//
// # Usage
//
//	src, err := sources.FromConfig(cfg.SourceA, sources.Deps{Storage: store, Bucket: bucket})
//	pairs, err := src.Load(ctx)
package sources
