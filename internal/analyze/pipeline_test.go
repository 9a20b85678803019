package analyze_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookietrace/internal/analyze"
	"cookietrace/internal/domain"
	"cookietrace/internal/store"
)

// fakeRenderer records the chart paths it was asked to draw.
type fakeRenderer struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeRenderer) Render(name string, samples []domain.EncodedSample, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return nil
}

func seedCapture(t *testing.T) *store.SeriesStore {
	t.Helper()
	s, err := store.NewSeriesStore(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2023, 5, 22, 14, 30, 0, 0, time.Local)
	for i, v := range []string{"tok-1", "tok-2", "tok-3"} {
		require.NoError(t, s.Append("session", domain.Sample{At: base.Add(time.Duration(i) * time.Second), Value: v}))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append("static", domain.Sample{At: base.Add(time.Duration(i) * time.Second), Value: "same"}))
	}
	return s
}

func TestPipelineEncodesRewritesAndRenders(t *testing.T) {
	s := seedCapture(t)
	r := &fakeRenderer{}

	stats, err := analyze.NewPipeline(r, true).Run(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, "session", stats[0].Name)
	assert.Equal(t, "static", stats[1].Name)
	assert.Equal(t, 3, stats[0].Distinct)
	assert.Equal(t, 1, stats[1].Distinct)

	// CSVs were rewritten with the header and decimal column.
	raw, err := os.ReadFile(s.Path("session"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Time,Value,Decimal Value\n"))

	// Charts land next to their CSVs.
	assert.ElementsMatch(t, []string{
		strings.TrimSuffix(s.Path("session"), ".csv") + ".png",
		strings.TrimSuffix(s.Path("static"), ".csv") + ".png",
	}, r.paths)
}

func TestPipelineChartsDisabled(t *testing.T) {
	s := seedCapture(t)
	r := &fakeRenderer{}

	_, err := analyze.NewPipeline(r, false).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Empty(t, r.paths)

	// The CSV rewrite still happens.
	raw, err := os.ReadFile(s.Path("static"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Decimal Value")
}

func TestPipelineEmptyCapture(t *testing.T) {
	s, err := store.NewSeriesStore(t.TempDir())
	require.NoError(t, err)

	_, err = analyze.NewPipeline(&fakeRenderer{}, true).Run(context.Background(), s)
	assert.Error(t, err)
}
