package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB          DBConfig          `toml:"database"`
	Log         LogConfig         `toml:"log"`
	Tracker     TrackerConfig     `toml:"tracker"`
	Consistency ConsistencyConfig `toml:"consistency"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql:// URL or a local sqlite file.
}

type LogConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	JSON     bool   `toml:"json"`
	ToStdout bool   `toml:"to_stdout"`
}

type TrackerConfig struct {
	UndoWindow Duration `toml:"undo_window"`
}

type ConsistencyConfig struct {
	DefaultBaseline int `toml:"default_baseline"`
}

// Duration lets config files use Go duration strings ("2m", "90s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Returns the directory holding the config file and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "barbell"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default(dir string) *Config {
	return &Config{
		DB:          DBConfig{ConnectionString: "file:" + filepath.Join(dir, "barbell.db")},
		Log:         LogConfig{Level: "info"},
		Tracker:     TrackerConfig{UndoWindow: Duration{2 * time.Minute}},
		Consistency: ConsistencyConfig{DefaultBaseline: 4},
	}
}

// Reads the configuration from the config file.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load reads the file at path on top of the defaults. A missing file is not an
// error; the .env file and BARBELL_* variables are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// A missing .env is the common case.
	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BARBELL_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("BARBELL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BARBELL_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
}

func (c *Config) Validate() error {
	if c.DB.ConnectionString == "" {
		return fmt.Errorf("database.connection_string is required")
	}
	if c.Tracker.UndoWindow.Duration <= 0 {
		return fmt.Errorf("tracker.undo_window must be positive")
	}
	if c.Consistency.DefaultBaseline < 1 || c.Consistency.DefaultBaseline > 7 {
		return fmt.Errorf("consistency.default_baseline must be between 1 and 7")
	}
	return nil
}
