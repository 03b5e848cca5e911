package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/multicalc/loancalc/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// timestampLayout is fixed-width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore keeps the history log and preference blobs in one SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendHistory records an entry, assigning its ID and timestamp, and drops the
// oldest entries beyond MaxHistoryEntries.
func (s *SQLiteStore) AppendHistory(ctx context.Context, e HistoryEntry) (HistoryEntry, error) {
	if e.Kind == "" {
		return HistoryEntry{}, errors.New("history entry has no kind")
	}
	e.ID = uuid.NewString()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HistoryEntry{}, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO history (id, kind, inputs, outputs, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), string(e.Inputs), string(e.Outputs), e.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("inserting history: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM history WHERE rowid NOT IN
		(SELECT rowid FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?)`, MaxHistoryEntries)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("trimming history: %w", err)
	}

	return e, tx.Commit()
}

// ListHistory returns up to limit entries, newest first. A limit <= 0 means
// MaxHistoryEntries, which is every entry the log keeps.
func (s *SQLiteStore) ListHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	return s.ListHistoryByKind(ctx, "", limit)
}

// ListHistoryByKind is ListHistory restricted to one calculation kind. An empty
// kind matches every entry.
func (s *SQLiteStore) ListHistoryByKind(ctx context.Context, kind domain.Kind, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = MaxHistoryEntries
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, kind, inputs, outputs, created_at
		FROM history WHERE (? = '' OR kind = ?)
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, string(kind), string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var kind, in, out, ts string
		if err := rows.Scan(&e.ID, &kind, &in, &out, &ts); err != nil {
			return nil, err
		}
		e.Kind = domain.Kind(kind)
		e.Inputs = []byte(in)
		e.Outputs = []byte(out)
		e.CreatedAt, err = time.Parse(timestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("history %s: bad timestamp %q: %w", e.ID, ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory deletes every entry and reports how many were removed.
func (s *SQLiteStore) ClearHistory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Get returns the blob stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous blob.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}
