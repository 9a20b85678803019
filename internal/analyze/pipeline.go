package analyze

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cookietrace/internal/domain"
	"cookietrace/internal/encode"
	"cookietrace/internal/log"
)

// Pipeline encodes every series in a capture and renders its chart.
type Pipeline struct {
	renderer domain.Renderer
	charts   bool
	log      zerolog.Logger
}

// NewPipeline builds a pipeline; charts=false skips PNG rendering but still
// rewrites the CSVs with the encoded column.
func NewPipeline(r domain.Renderer, charts bool) *Pipeline {
	return &Pipeline{renderer: r, charts: charts, log: log.WithComponent("analyze")}
}

// Run processes each series in the store concurrently, bounded by NumCPU,
// and returns per-series stats in the store's (sorted) name order.
func (p *Pipeline) Run(ctx context.Context, store domain.SeriesStore) ([]Stats, error) {
	names, err := store.Names()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no cookie series in %s", store.Dir())
	}

	p.log.Info().Int("series", len(names)).Str("dir", store.Dir()).Msg("encoding and charting cookie values")

	stats := make([]Stats, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := p.process(store, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// process encodes one series, rewrites its CSV and renders its chart.
func (p *Pipeline) process(store domain.SeriesStore, name string) (Stats, error) {
	samples, err := store.Load(name)
	if err != nil {
		return Stats{}, err
	}

	enc := encode.NewEncoder()
	encoded := make([]domain.EncodedSample, len(samples))
	for i, s := range samples {
		encoded[i] = domain.EncodedSample{Sample: s, Decimal: enc.Encode(s.Value)}
	}

	if err := store.Rewrite(name, encoded); err != nil {
		return Stats{}, err
	}

	if p.charts && p.renderer != nil {
		png := strings.TrimSuffix(store.Path(name), ".csv") + ".png"
		if err := p.renderer.Render(name, encoded, png); err != nil {
			return Stats{}, err
		}
		p.log.Debug().Str("series", name).Str("chart", png).Msg("chart written")
	}
	return Summarise(name, encoded), nil
}
