// Package formatter renders trip result sets for people and programs.
//
// This package is organized into:
// - advisory.go: presentation hints (low rating, low seats) and option lists
// - table.go: aligned text table of a result set
// - detail.go: the full detail card of one record
// - json.go: JSON serialization
//
// Advisory flags are display hints only; they never influence which records
// a query returns or their order.
package formatter
