package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/barbell/internal/models"
)

// UndoStatePath can be overridden in tests.
var UndoStatePath = defaultUndoStatePath

func defaultUndoStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "barbell")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "undo.toml"), nil
}

// SaveUndoState writes the pending undo slot so the next invocation can pick it up.
func SaveUndoState(entry *models.UndoEntry) error {
	path, err := UndoStatePath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(entry)
}

func LoadUndoState() (*models.UndoEntry, error) {
	path, err := UndoStatePath()
	if err != nil {
		return nil, err
	}

	var entry models.UndoEntry
	if _, err := toml.DecodeFile(path, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func ClearUndoState() error {
	path, err := UndoStatePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func UndoStateExists() bool {
	path, err := UndoStatePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
