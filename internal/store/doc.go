// Package store provides file-based persistence for capture data.
//
// A capture directory holds one CSV file per cookie name. During collection
// rows are appended as timestamp,value pairs; analysis rewrites each file
// with a header and a third column holding the encoded decimal, so a capture
// can be re-analyzed from either shape. All methods are concurrency-safe via
// internal locking.
package store
