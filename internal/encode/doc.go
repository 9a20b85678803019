// Package encode turns cookie value strings into single decimals so a series
// of observations can be charted over time.
//
// The coder is an adaptive arithmetic encoder: each series keeps a model of
// cumulative per-character intervals on the unit line, updated with every new
// value, and a value is encoded by narrowing [0,1) through its characters'
// intervals. Similar strings land near each other, so a cookie built from a
// counter or timestamp draws a visible trend while a random token draws noise.
package encode
