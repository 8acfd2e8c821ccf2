package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/barbell/internal/config"
	"github.com/misterclayt0n/barbell/internal/storage"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("Failed to locate config directory: %w", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeDefaultConfig(path); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Wrote default config to %s\n", path)
		}

		st, err := storage.NewStorage(cfg.DB.ConnectionString)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Printf("✅ Database initialized successfully (%s)\n", st.Driver())

		stored, err := hasStoredProgram(cmd.Context(), st)
		if err != nil {
			return err
		}
		if stored {
			fmt.Println("A program is already stored; nothing was overwritten")
		} else {
			fmt.Println("No program yet. Import one with 'barbell import [file]'")
		}
		return nil
	},
}

func hasStoredProgram(ctx context.Context, st *storage.Storage) (bool, error) {
	stored, err := st.Exists(ctx, tracker.KeyWorkouts)
	if err != nil {
		return false, fmt.Errorf("Failed to check stored program: %w", err)
	}
	return stored, nil
}

func writeDefaultConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(config.Default(dir))
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
