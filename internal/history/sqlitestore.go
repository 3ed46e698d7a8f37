package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/snapdeck/genicons/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    root      TEXT    NOT NULL DEFAULT '',
    source    TEXT    NOT NULL DEFAULT '',
    error     TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_files (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    seq     INTEGER NOT NULL,
    path    TEXT    NOT NULL,
    size    INTEGER NOT NULL,
    bytes   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_run_files_run  ON run_files(run_id, seq);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Record(run Run) error {
	ts := run.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, root, source, error) VALUES (?, ?, ?, ?)`,
		ts.Format(time.RFC3339), run.Root, run.Source, run.Err,
	)
	if err != nil {
		return err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, f := range run.Files {
		if _, err := tx.Exec(
			`INSERT INTO run_files (run_id, seq, path, size, bytes) VALUES (?, ?, ?, ?, ?)`,
			runID, i+1, f.Path, f.Size, f.Bytes,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Recent(n int) ([]Run, error) {
	query := `SELECT id, timestamp, root, source, error FROM runs ORDER BY id DESC`
	var args []any
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	var ids []int64
	var runs []Run
	for rows.Next() {
		var id int64
		var tsStr string
		var r Run
		if err := rows.Scan(&id, &tsStr, &r.Root, &r.Source, &r.Err); err != nil {
			rows.Close()
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r.Time = ts
		ids = append(ids, id)
		runs = append(runs, r)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		files, err := s.files(id)
		if err != nil {
			return nil, err
		}
		runs[i].Files = files
	}
	return runs, nil
}

func (s *SQLiteStore) files(runID int64) ([]File, error) {
	rows, err := s.db.Query(
		`SELECT path, size, bytes FROM run_files WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.Path, &f.Size, &f.Bytes); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
