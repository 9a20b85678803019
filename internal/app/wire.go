package app

import (
	"net/http"

	"cookietrace/internal/analyze"
	"cookietrace/internal/collect"
	"cookietrace/internal/domain"
	"cookietrace/internal/render"
	"cookietrace/internal/store/catalog"
)

// Wire bundles the collector, pipeline and run catalog for the CLI.
type Wire struct {
	Collector domain.Collector
	Pipeline  *analyze.Pipeline
	Runs      domain.RunStore
	Config    Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	runs, err := catalog.Open(cfg.Home)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Collector: collect.New(httpClient),
		Pipeline:  analyze.NewPipeline(render.NewScatter(), cfg.Charts),
		Runs:      runs,
		Config:    cfg,
	}, nil
}

// Close releases resources held by the wire.
func (w *Wire) Close() error { return w.Runs.Close() }
