package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage is a key-value store of JSON documents kept in a single SQL table.
type Storage struct {
	DB     *sql.DB
	driver string
}

// driverFor picks libsql for remote databases and the pure Go sqlite driver
// for local files.
func driverFor(connString string) string {
	for _, prefix := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(connString, prefix) {
			return "libsql"
		}
	}
	return "sqlite"
}

// localPath returns the file behind a sqlite connection string
// ("file:/a/b.db?mode=rwc" -> "/a/b.db").
func localPath(connString string) string {
	p := strings.TrimPrefix(connString, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}

func NewStorage(connString string) (*Storage, error) {
	if connString == "" {
		return nil, fmt.Errorf("no database connection string configured")
	}

	driver := driverFor(connString)
	if driver == "sqlite" {
		if dir := filepath.Dir(localPath(connString)); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("Failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", connString, err)
	}

	if driver == "sqlite" {
		// A single writer keeps sqlite from returning SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("Failed to set busy timeout: %w", err)
		}
	}

	if err := InitializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db, driver: driver}, nil
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *Storage) Driver() string {
	return s.driver
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Get decodes the document stored under key into dst. It reports false when
// the key does not exist.
func (s *Storage) Get(ctx context.Context, key string, dst any) (bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return true, fmt.Errorf("Failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key as JSON, replacing any previous document.
func (s *Storage) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("Failed to encode %s: %w", key, err)
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("Failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in order.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("Failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("Failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
