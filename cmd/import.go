package cmd

import (
	"fmt"

	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/parser"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	importTarget string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import pasted workout text into a new week or merge it into the current one",
	Long: `Reads tab separated workout text (a file, or stdin when the file is "-" or missing)
and adds the parsed days to the program. With --target new the days become a new
week. With --target current each day is merged into the current week's day of the
same name, or appended when there is none.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := tracker.ParseTarget(importTarget)
		if err != nil {
			return err
		}

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		days, err := parseWorkout(text)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			return fmt.Errorf("No workout data found")
		}

		summary := parser.Summarize(days)
		if importDryRun {
			for i, d := range days {
				printDay(d, i)
				fmt.Println()
			}
			fmt.Printf("Would import %d days with %d exercises\n", summary.DayCount, summary.ExerciseCount)
			return nil
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		wi, err := a.tr.ImportDays(cmd.Context(), days, target)
		if err != nil {
			return fmt.Errorf("Failed to import workout: %w", err)
		}

		fmt.Printf("✅ Imported %d days with %d exercises into %s\n",
			summary.DayCount, summary.ExerciseCount, a.tr.Program().Weeks[wi].Label)
		return nil
	},
}

// parseWorkout runs the parser, turning a panic on malformed input into an error.
func parseWorkout(text string) (days []models.Day, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Workout parser failed")
			err = fmt.Errorf("error parsing workout data")
		}
	}()
	return parser.Parse(text), nil
}

func init() {
	importCmd.Flags().StringVarP(&importTarget, "target", "t", string(tracker.TargetNew), "Where to put the days: new or current")
	importCmd.Flags().BoolVarP(&importDryRun, "dry-run", "n", false, "Print the parsed days without saving")
	rootCmd.AddCommand(importCmd)
}
