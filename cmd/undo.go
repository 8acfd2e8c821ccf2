package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Restore the last deleted exercise, day or week",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.tr.Undo(cmd.Context())
		if errors.Is(err, tracker.ErrNothingToUndo) {
			return fmt.Errorf("Nothing to undo")
		}
		if err != nil {
			return fmt.Errorf("Failed to undo: %w", err)
		}

		fmt.Printf("✅ Restored %s '%s'\n", entry.Kind, entry.Label())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
