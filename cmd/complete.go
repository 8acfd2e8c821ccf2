package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	completeWeek int
	completeDay  int
)

var completeCmd = &cobra.Command{
	Use:   "complete [exercise-index]",
	Short: "Toggle whether an exercise is done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ei, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		di, err := dayArg(completeDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		done, err := a.tr.ToggleComplete(cmd.Context(), weekArg(completeWeek), di, ei)
		if err != nil {
			return fmt.Errorf("Failed to update exercise: %w", err)
		}

		ex, err := a.tr.Exercise(weekArg(completeWeek), di, ei)
		if err != nil {
			return err
		}
		if done {
			fmt.Printf("%s '%s' done\n", completionMark(true), ex.Name)
		} else {
			fmt.Printf("%s '%s' marked as not done\n", completionMark(false), ex.Name)
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVarP(&completeWeek, "week", "w", 0, "Week number (defaults to the current week)")
	completeCmd.Flags().IntVarP(&completeDay, "day", "d", 0, "Day number")
	completeCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(completeCmd)
}
