package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookietrace/internal/domain"
	"cookietrace/internal/store"
)

func sampleAt(sec int, value string) domain.Sample {
	return domain.Sample{
		At:    time.Date(2023, 5, 22, 14, 30, sec, 123456000, time.Local),
		Value: value,
	}
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	s, err := store.NewSeriesStore(filepath.Join(t.TempDir(), "capture"))
	require.NoError(t, err)

	want := []domain.Sample{sampleAt(1, "abc"), sampleAt(2, "abd"), sampleAt(3, "val,with,commas")}
	for _, smp := range want {
		require.NoError(t, s.Append("session", smp))
	}

	got, err := s.Load("session")
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].At.Equal(want[i].At), "row %d: want %v, got %v", i, want[i].At, got[i].At)
		assert.Equal(t, want[i].Value, got[i].Value, "row %d", i)
	}
}

func TestRewriteAddsHeaderAndDecimals(t *testing.T) {
	s, err := store.NewSeriesStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Append("token", sampleAt(1, "abc")))

	encoded := []domain.EncodedSample{
		{Sample: sampleAt(1, "abc"), Decimal: 6.25},
		{Sample: sampleAt(2, "abd"), Decimal: 7.8125},
	}
	require.NoError(t, s.Rewrite("token", encoded))

	raw, err := os.ReadFile(s.Path("token"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Time,Value,Decimal Value", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",abc,6.25"), "line %q", lines[1])

	// A rewritten file loads back without the header row.
	got, err := s.Load("token")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "abd", got[1].Value)
}

func TestNamesSorted(t *testing.T) {
	s, err := store.NewSeriesStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Append("zeta", sampleAt(1, "1")))
	require.NoError(t, s.Append("alpha", sampleAt(1, "2")))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestPathSanitisesCookieNames(t *testing.T) {
	s, err := store.NewSeriesStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Append("weird/name", sampleAt(1, "x")))
	assert.FileExists(t, filepath.Join(s.Dir(), "weird_name.csv"))
}

func TestOpenSeriesStoreRejectsMissingDir(t *testing.T) {
	_, err := store.OpenSeriesStore(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRemoveIfEmpty(t *testing.T) {
	empty, err := store.NewSeriesStore(filepath.Join(t.TempDir(), "empty"))
	require.NoError(t, err)
	empty.RemoveIfEmpty()
	assert.NoDirExists(t, empty.Dir())

	full, err := store.NewSeriesStore(filepath.Join(t.TempDir(), "full"))
	require.NoError(t, err)
	require.NoError(t, full.Append("c", sampleAt(1, "x")))
	full.RemoveIfEmpty()
	assert.DirExists(t, full.Dir())
}
