// Package commands defines the cookietrace CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - run      Capture cookies from a target, then encode and chart them
//   - collect  Capture only, leaving raw CSVs for later analysis
//   - analyze  Encode and chart a previously captured directory
//   - runs     List capture runs recorded in the catalog
//
// # Implementation
//
// The root command loads the defaults file and builds a dependency graph
// (collector, pipeline, catalog) before any subcommand runs, so handlers can
// use a shared app context.
package commands
