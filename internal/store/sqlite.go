package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// SQLite is a Store backed by a single SQLite table.
type SQLite struct {
	conn *sql.DB
	hub  *hub
}

// OpenSQLite opens (or creates) the database at path. The special path
// ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	var dsn string
	if path == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, hueyerrors.NewStoreError("sqlite", "", fmt.Errorf("create database directory: %w", err))
		}
		// WAL with a busy timeout so a second huey process can read while
		// another writes.
		dsn = fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, hueyerrors.NewStoreError("sqlite", "", fmt.Errorf("open database: %w", err))
	}

	// One connection: SQLite has a single writer, and ":memory:" databases
	// are per connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if _, err := conn.Exec(sqliteSchema); err != nil {
		conn.Close()
		return nil, hueyerrors.NewStoreError("sqlite", "", fmt.Errorf("initialize schema: %w", err))
	}

	return &SQLite{conn: conn, hub: newHub()}, nil
}

// Get implements Store.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.conn.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, hueyerrors.NewStoreError("sqlite", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return hueyerrors.NewStoreError("sqlite", key, err)
	}

	s.hub.publish(Event{Key: key, Op: OpSet, Value: append([]byte(nil), value...)})
	return nil
}

// Remove implements Store.
func (s *SQLite) Remove(ctx context.Context, key string) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key)
	if err != nil {
		return hueyerrors.NewStoreError("sqlite", key, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.publish(Event{Key: key, Op: OpRemove})
	}
	return nil
}

// Keys implements Store.
func (s *SQLite) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT key FROM preferences ORDER BY key")
	if err != nil {
		return nil, hueyerrors.NewStoreError("sqlite", "", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, hueyerrors.NewStoreError("sqlite", "", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, hueyerrors.NewStoreError("sqlite", "", err)
	}
	return keys, nil
}

// Subscribe implements Store. Only writes made through this handle are
// reported.
func (s *SQLite) Subscribe() (<-chan Event, func()) { return s.hub.subscribe() }

// Close implements Store.
func (s *SQLite) Close() error {
	s.hub.close()
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open creates the persistent backend named by backend at path.
func Open(backend, path string, opts ...FileOption) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		f, err := OpenFile(path, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, hueyerrors.NewStoreError(backend, "", fmt.Errorf("unknown store backend %q (want file or sqlite)", backend))
}
