package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notesText string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Print the training notes, or replace them with --set",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if cmd.Flags().Changed("set") {
			a.tr.SetNotes(cmd.Context(), notesText)
			fmt.Println("✅ Notes saved")
			return nil
		}

		notes := a.tr.Notes(cmd.Context())
		if notes == "" {
			fmt.Println(faint("No notes yet"))
			return nil
		}
		fmt.Println(notes)
		return nil
	},
}

func init() {
	notesCmd.Flags().StringVar(&notesText, "set", "", "Replace the notes with this text")
	rootCmd.AddCommand(notesCmd)
}
