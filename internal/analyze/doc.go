// Package analyze runs the encode-and-chart pipeline over a capture
// directory and summarises how predictable each cookie series looks.
package analyze
