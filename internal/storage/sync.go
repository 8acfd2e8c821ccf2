package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DumpEntry is one kv row in a dump file. Value holds the raw JSON document.
type DumpEntry struct {
	Key       string `toml:"key" yaml:"key"`
	Value     string `toml:"value" yaml:"value"`
	UpdatedAt string `toml:"updated_at" yaml:"updated_at"`
}

type Dump struct {
	Entries []DumpEntry `toml:"entry" yaml:"entries"`
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown dump format %q (want toml or yaml)", s)
}

// FormatFromPath guesses the dump format from a file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// GetDBExportPath returns the default dump location, ~/.config/barbell/db_dump.<ext>.
func GetDBExportPath(format Format) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "barbell")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump."+string(format)), nil
}

// Export writes every stored document to w.
func (s *Storage) Export(ctx context.Context, w io.Writer, format Format) error {
	rows, err := s.DB.QueryContext(ctx, "SELECT key, value, updated_at FROM kv ORDER BY key")
	if err != nil {
		return fmt.Errorf("querying kv: %w", err)
	}
	defer rows.Close()

	var dump Dump
	for rows.Next() {
		var e DumpEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		dump.Entries = append(dump.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(w).Encode(dump); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
		return nil
	}
}

func decodeDump(r io.Reader, format Format) (*Dump, error) {
	var dump Dump
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dump); err != nil && err != io.EOF {
			return nil, fmt.Errorf("Decoding YAML: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(&dump); err != nil {
			return nil, fmt.Errorf("Decoding TOML: %w", err)
		}
	}

	for _, e := range dump.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("dump entry without a key")
		}
		if !json.Valid([]byte(e.Value)) {
			return nil, fmt.Errorf("dump entry %s does not hold valid JSON", e.Key)
		}
	}
	return &dump, nil
}

// Import replaces every stored document with the contents of a dump. Nothing
// is written when the dump fails to decode.
func (s *Storage) Import(ctx context.Context, r io.Reader, format Format) (int, error) {
	dump, err := decodeDump(r, format)
	if err != nil {
		return 0, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("Begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM kv"); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("Clearing kv: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range dump.Entries {
		updated := e.UpdatedAt
		if updated == "" {
			updated = now
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
			e.Key, e.Value, updated,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("Inserting %s: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("Committing transaction: %w", err)
	}
	return len(dump.Entries), nil
}
