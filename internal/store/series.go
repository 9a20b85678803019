package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cookietrace/internal/domain"
)

// timeLayout matches the timestamps the original captures carry, so old
// capture directories re-analyze unchanged.
const timeLayout = "2006-01-02 15:04:05.000000"

// header is written when a series is rewritten with encoded values.
var header = []string{"Time", "Value", "Decimal Value"}

// SeriesStore keeps one CSV file per cookie name inside a capture directory.
type SeriesStore struct {
	dir string
	mu  sync.Mutex
}

// NewSeriesStore creates dir if needed and returns a store over it.
func NewSeriesStore(dir string) (*SeriesStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SeriesStore{dir: dir}, nil
}

// OpenSeriesStore returns a store over an existing capture directory.
func OpenSeriesStore(dir string) (*SeriesStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}
	return &SeriesStore{dir: dir}, nil
}

var _ domain.SeriesStore = (*SeriesStore)(nil)

func (s *SeriesStore) Dir() string { return s.dir }

// Path is the CSV file backing the named series.
func (s *SeriesStore) Path(name string) string {
	return filepath.Join(s.dir, sanitise(name)+".csv")
}

// sanitise keeps cookie names usable as file names.
func sanitise(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		}
		return r
	}, name)
}

// Append adds a raw timestamp,value row to the named series.
func (s *SeriesStore) Append(name string, sample domain.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{sample.At.Format(timeLayout), sample.Value}); err != nil {
		_ = f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Names lists the series present in the capture directory, sorted.
func (s *SeriesStore) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a series back. Both shapes parse: raw two-column captures and
// rewritten files, whose header row and decimal column are skipped.
func (s *SeriesStore) Load(name string) ([]domain.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path(name), err)
	}

	samples := make([]domain.Sample, 0, len(records))
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == header[0] {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: row %d: want at least 2 fields, got %d", s.Path(name), i+1, len(rec))
		}
		at, err := time.ParseInLocation(timeLayout, rec[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", s.Path(name), i+1, err)
		}
		samples = append(samples, domain.Sample{At: at, Value: rec[1]})
	}
	return samples, nil
}

// Rewrite replaces the series file with a header and the encoded rows.
func (s *SeriesStore) Rewrite(name string, samples []domain.EncodedSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range samples {
		rec := []string{
			e.At.Format(timeLayout),
			e.Value,
			strconv.FormatFloat(e.Decimal, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeFile(s.Path(name), buf.Bytes(), 0o644)
}

// RemoveIfEmpty deletes the capture directory when nothing was written to it.
// A directory with captures is left alone.
func (s *SeriesStore) RemoveIfEmpty() {
	_ = os.Remove(s.dir)
}
