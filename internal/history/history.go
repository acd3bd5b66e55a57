// Package history provides SQLite-based storage of calculator evaluations.
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Entry is one recorded evaluation.
type Entry struct {
	ID        string    `db:"id"`
	Op        string    `db:"op"`
	Args      string    `db:"args"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"-"`
}

// Describe renders the entry for terminal output, e.g. "add 3+5i 23-15i = 26-10i (2 minutes ago)".
func (e Entry) Describe(now time.Time) string {
	expr := e.Op
	if e.Args != "" {
		expr += " " + e.Args
	}
	return fmt.Sprintf("%s = %s (%s)", expr, e.Result, humanize.RelTime(e.CreatedAt, now, "ago", "from now"))
}

// row is the on-disk shape; timestamps are stored as unix nanoseconds.
type row struct {
	Entry
	Created int64 `db:"created_at"`
}

// Store wraps a SQLite connection for the evaluation history.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		op TEXT NOT NULL,
		args TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_evaluations_created ON evaluations(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Record stores an evaluation. Missing IDs and timestamps are filled in.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.conn.NamedExecContext(ctx,
		`INSERT INTO evaluations (id, op, args, result, created_at) VALUES (:id, :op, :args, :result, :created_at)`,
		row{Entry: e, Created: e.CreatedAt.UnixNano()})
	if err != nil {
		return e, fmt.Errorf("record evaluation: %w", err)
	}
	return e, nil
}

// RecordArgs is Record for an op and its operand list.
func (s *Store) RecordArgs(ctx context.Context, op string, args []string, result string) (Entry, error) {
	return s.Record(ctx, Entry{Op: op, Args: strings.Join(args, " "), Result: result})
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	var rows []row
	err := s.conn.SelectContext(ctx, &rows,
		`SELECT id, op, args, result, created_at FROM evaluations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.Entry
		entries[i].CreatedAt = time.Unix(0, r.Created)
	}
	return entries, nil
}

// Count returns the number of stored evaluations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM evaluations`); err != nil {
		return 0, err
	}
	return n, nil
}

// Clear deletes all entries.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM evaluations`)
	return err
}
