package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Record is one persisted run.
type Record struct {
	// Seq is the global write order, assigned by the database.
	Seq int64

	// ID identifies the record itself. Writes with a duplicate ID are
	// silently ignored, which makes retries safe.
	ID string

	// RunToken is the token the demo layer stamped on the result.
	RunToken string

	// Operation names what ran, e.g. "random_bit" or "entangle".
	Operation string

	// Summary is the canonical JSON serialization of the result summary.
	Summary string

	// Hash is the hex SHA-256 of Summary.
	Hash string

	// CreatedAt is the database-assigned UTC timestamp.
	CreatedAt string
}

// Store is the run history database. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path and applies the
// schema. WAL mode keeps history reads from blocking writes; the
// connection pool is capped at one because SQLite has a single writer.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect run log: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply run log schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Write persists one run. The summary is canonicalized and hashed here
// so every stored record carries a comparable content hash. Returns the
// written record with its ID filled in.
func (s *Store) Write(ctx context.Context, runToken, operation string, summary map[string]any) (Record, error) {
	data, err := MarshalCanonical(summary)
	if err != nil {
		return Record{}, fmt.Errorf("write run: %w", err)
	}
	hash, err := SummaryHash(summary)
	if err != nil {
		return Record{}, fmt.Errorf("write run: %w", err)
	}

	rec := Record{
		ID:        uuid.Must(uuid.NewV7()).String(),
		RunToken:  runToken,
		Operation: operation,
		Summary:   string(data),
		Hash:      hash,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, run_token, operation, summary, hash)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, rec.ID, rec.RunToken, rec.Operation, rec.Summary, rec.Hash)
	if err != nil {
		return Record{}, fmt.Errorf("write run: %w", err)
	}
	return rec, nil
}

// List returns the most recent runs, newest first. A limit below 1
// defaults to 20.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, run_token, operation, summary, hash, created_at
		FROM runs
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Seq, &rec.ID, &rec.RunToken, &rec.Operation, &rec.Summary, &rec.Hash, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return records, nil
}
