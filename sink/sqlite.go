package sink

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jtpeller/wordclique/report"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	length     INTEGER NOT NULL,
	fuzzy      INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS cliques (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id  INTEGER NOT NULL REFERENCES runs(id),
	words   TEXT NOT NULL,
	repeats TEXT NOT NULL,
	missing TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cliques_run ON cliques(run_id);
`

// SQLiteSink records every run and its cliques in a SQLite database, so
// results can be queried across lengths and across strict/fuzzy runs.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (creating if needed) the database at path and
// bootstraps the schema.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sink: opening sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: creating schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) WriteCliques(length int, fuzzy bool, reports []report.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sink: begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO runs (length, fuzzy) VALUES (?, ?)", length, fuzzy)
	if err != nil {
		return fmt.Errorf("sink: inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sink: run id: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO cliques (run_id, words, repeats, missing) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sink: preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range reports {
		_, err := stmt.Exec(runID, strings.Join(r.Words, " "),
			r.Repeats.String(), r.Missing.String())
		if err != nil {
			return fmt.Errorf("sink: inserting clique: %w", err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
