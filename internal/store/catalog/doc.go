// Package catalog keeps a SQLite history of capture runs so past output
// directories can be found and re-analyzed later.
package catalog
