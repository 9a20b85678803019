package domain

import "context"

// SeriesStore persists one capture directory of per-cookie sample series.
type SeriesStore interface {
	// Append adds a raw observation to the named series.
	Append(name string, s Sample) error
	// Names lists the series present in the store, sorted.
	Names() ([]string, error)
	// Load reads a series back; it accepts both raw and rewritten files.
	Load(name string) ([]Sample, error)
	// Rewrite replaces the series file with header and encoded rows.
	Rewrite(name string, samples []EncodedSample) error
	// Path is the CSV file backing the named series.
	Path(name string) string
	// Dir is the capture directory backing the store.
	Dir() string
}

// Collector captures cookie observations from a target into a SeriesStore.
type Collector interface {
	Collect(ctx context.Context, rawurl string, opts CollectOptions, store SeriesStore) (Run, error)
}

// RunStore is the catalog of past capture runs.
type RunStore interface {
	SaveRun(ctx context.Context, r Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// Renderer draws one series' encoded values over time.
type Renderer interface {
	Render(name string, samples []EncodedSample, path string) error
}
