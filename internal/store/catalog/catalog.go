package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"cookietrace/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	url          TEXT NOT NULL,
	domain       TEXT NOT NULL,
	out_dir      TEXT NOT NULL,
	requests     INTEGER NOT NULL,
	cookies      INTEGER NOT NULL,
	samples      INTEGER NOT NULL,
	started_utc  INTEGER NOT NULL,
	finished_utc INTEGER NOT NULL
);`

// Store records capture runs in a SQLite catalog under the home directory.
type Store struct {
	db *sql.DB
}

// Open creates or opens <home>/catalog.db and ensures the schema exists.
func Open(home string) (*Store, error) {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}
	path := filepath.Join(home, "catalog.db")

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init catalog: %w", err)
	}
	return &Store{db: db}, nil
}

var _ domain.RunStore = (*Store)(nil)

func (s *Store) Close() error { return s.db.Close() }

// SaveRun records one finished capture.
func (s *Store) SaveRun(ctx context.Context, r domain.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, url, domain, out_dir, requests, cookies, samples, started_utc, finished_utc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.URL, r.Domain, r.OutDir, r.Requests, r.Cookies, r.Samples, r.StartedUTC, r.FinishedUTC)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs, newest first. A limit of 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	q := `
		SELECT id, url, domain, out_dir, requests, cookies, samples, started_utc, finished_utc
		FROM runs ORDER BY started_utc DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Run
	for rows.Next() {
		var r domain.Run
		if err := rows.Scan(&r.ID, &r.URL, &r.Domain, &r.OutDir, &r.Requests, &r.Cookies, &r.Samples, &r.StartedUTC, &r.FinishedUTC); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
