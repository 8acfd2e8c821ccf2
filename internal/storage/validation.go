package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM kv WHERE key = ?)",
		key,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}

	return exists, nil
}
