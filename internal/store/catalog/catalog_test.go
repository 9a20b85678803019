package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookietrace/internal/domain"
	"cookietrace/internal/store/catalog"
)

func testRun(started int64) domain.Run {
	return domain.Run{
		ID:          uuid.NewString(),
		URL:         "http://localhost:8080/login",
		Domain:      "localhost",
		OutDir:      "localhost_220523_143005",
		Requests:    50,
		Cookies:     2,
		Samples:     100,
		StartedUTC:  started,
		FinishedUTC: started + 30,
	}
}

func TestSaveAndListRuns(t *testing.T) {
	s, err := catalog.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	older := testRun(1000)
	newer := testRun(2000)
	require.NoError(t, s.SaveRun(ctx, older))
	require.NoError(t, s.SaveRun(ctx, newer))

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID, "newest first")
	assert.Equal(t, older.ID, runs[1].ID)
	assert.Equal(t, older.URL, runs[1].URL)
	assert.Equal(t, older.Samples, runs[1].Samples)
}

func TestListRunsLimit(t *testing.T) {
	s, err := catalog.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	for i := int64(0); i < 5; i++ {
		require.NoError(t, s.SaveRun(ctx, testRun(1000+i)))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := catalog.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s1.SaveRun(context.Background(), testRun(1)))
	require.NoError(t, s1.Close())

	s2, err := catalog.Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
