// Package app wires application dependencies for the CLI.
//
// It loads the defaults file, then builds the collector, analysis pipeline,
// renderer and run catalog from Config, exposing them via the Wire struct
// for commands to use.
package app
