// Package utils provides small helpers shared by the data sources: coercing
// cell values to numeric identifiers and converting spreadsheet column
// references between letters and indices.
package utils
