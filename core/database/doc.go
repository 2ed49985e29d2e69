// Package database handles SQL connections and schema inspection for table sources.
//
// It wraps GORM to configure MySQL or SQLite connections from the
// application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool limits and pings the
// server before returning. Connection failures are returned, never fatal:
// most commands do not need a database.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects. RequireColumns
// is used by the table source to fail fast when the configured ID or URL
// column does not exist, before any rows are read.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	if err := database.RequireColumns(db, "links", "id", "short_url"); err != nil {
//	    return err
//	}
package database
