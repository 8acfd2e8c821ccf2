package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteYes  bool
	deleteWeek int
	deleteDay  int
)

var deleteWeekCmd = &cobra.Command{
	Use:   "delete-week [week]",
	Short: "Delete a week with all its days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wi, err := parseIndex(args[0], "week")
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.tr.Program()
		if wi >= len(p.Weeks) {
			return fmt.Errorf("Week index out of range")
		}
		w := p.Weeks[wi]
		if !deleteYes && !confirm(cmd, fmt.Sprintf("Delete %s and its %d days?", w.Label, len(w.Days))) {
			fmt.Println("Cancelled")
			return nil
		}

		deleted, err := a.tr.DeleteWeek(cmd.Context(), wi)
		if err != nil {
			return fmt.Errorf("Failed to delete week: %w", err)
		}
		fmt.Printf("✅ Deleted %s (run 'barbell undo' to restore it)\n", deleted.Label)
		return nil
	},
}

var deleteDayCmd = &cobra.Command{
	Use:   "delete-day [day]",
	Short: "Delete a day from a week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		di, err := parseIndex(args[0], "day")
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		d, err := a.tr.Day(weekArg(deleteWeek), di)
		if err != nil {
			return err
		}
		if !deleteYes && !confirm(cmd, fmt.Sprintf("Delete %s and its %d exercises?", d.Title(di), len(d.Exercises))) {
			fmt.Println("Cancelled")
			return nil
		}

		if _, err := a.tr.DeleteDay(cmd.Context(), weekArg(deleteWeek), di); err != nil {
			return fmt.Errorf("Failed to delete day: %w", err)
		}
		fmt.Printf("✅ Deleted %s (run 'barbell undo' to restore it)\n", d.Title(di))
		return nil
	},
}

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete-exercise [exercise-index]",
	Short: "Delete an exercise from a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ei, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		di, err := dayArg(deleteDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		deleted, err := a.tr.DeleteExercise(cmd.Context(), weekArg(deleteWeek), di, ei)
		if err != nil {
			return fmt.Errorf("Failed to delete exercise: %w", err)
		}
		fmt.Printf("✅ Deleted '%s' (run 'barbell undo' to restore it)\n", deleted.Name)
		return nil
	},
}

func init() {
	deleteWeekCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")

	deleteDayCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
	deleteDayCmd.Flags().IntVarP(&deleteWeek, "week", "w", 0, "Week number (defaults to the current week)")

	deleteExerciseCmd.Flags().IntVarP(&deleteWeek, "week", "w", 0, "Week number (defaults to the current week)")
	deleteExerciseCmd.Flags().IntVarP(&deleteDay, "day", "d", 0, "Day number")
	deleteExerciseCmd.MarkFlagRequired("day")

	rootCmd.AddCommand(deleteWeekCmd)
	rootCmd.AddCommand(deleteDayCmd)
	rootCmd.AddCommand(deleteExerciseCmd)
}
