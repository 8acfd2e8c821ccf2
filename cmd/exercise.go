package cmd

import (
	"fmt"

	"github.com/misterclayt0n/barbell/internal/parser"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	exWeek    int
	exDay     int
	exName    string
	exLoad    string
	exSets    string
	exReps    string
	exRemarks string
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Add an exercise to a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		di, err := dayArg(exDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		ex, err := a.tr.AddExercise(cmd.Context(), weekArg(exWeek), di, tracker.ExerciseInput{
			Name:    exName,
			Load:    exLoad,
			Sets:    exSets,
			Reps:    exReps,
			Remarks: parser.ParseRemarkList(exRemarks),
		})
		if err != nil {
			return fmt.Errorf("Failed to add exercise: %w", err)
		}

		fmt.Printf("✅ Added '%s' %s\n", ex.Name, formatPrescription(ex))
		return nil
	},
}

var addExercisesCmd = &cobra.Command{
	Use:   "add-exercises [file|-]",
	Short: "Add several exercises to a day, one tab separated line each",
	Long: `Each non-blank line is Name<TAB>Load<TAB>Sets<TAB>Reps followed by optional remarks.
Reads stdin when the file is "-" or missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		di, err := dayArg(exDay)
		if err != nil {
			return err
		}

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		exs := parser.ParseQuickAdd(text)
		if len(exs) == 0 {
			return fmt.Errorf("No exercises found in the input")
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.tr.AddExercises(cmd.Context(), weekArg(exWeek), di, exs)
		if err != nil {
			return fmt.Errorf("Failed to add exercises: %w", err)
		}

		fmt.Printf("✅ Added %d exercises\n", n)
		return nil
	},
}

var editExerciseCmd = &cobra.Command{
	Use:   "edit-exercise [exercise-index]",
	Short: "Edit the name, load, sets, reps or remarks of an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ei, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		di, err := dayArg(exDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		current, err := a.tr.Exercise(weekArg(exWeek), di, ei)
		if err != nil {
			return err
		}

		// Flags that were not given keep the current value.
		in := tracker.ExerciseInput{
			Name:    current.Name,
			Load:    current.Load,
			Sets:    current.Sets.String(),
			Reps:    current.Reps,
			Remarks: current.Remarks,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			in.Name = exName
		}
		if flags.Changed("load") {
			in.Load = exLoad
		}
		if flags.Changed("sets") {
			in.Sets = exSets
		}
		if flags.Changed("reps") {
			in.Reps = exReps
		}
		if flags.Changed("remarks") {
			in.Remarks = parser.ParseRemarkList(exRemarks)
		}

		ex, err := a.tr.EditExercise(cmd.Context(), weekArg(exWeek), di, ei, in)
		if err != nil {
			return fmt.Errorf("Failed to edit exercise: %w", err)
		}

		fmt.Printf("✅ Updated '%s' %s\n", ex.Name, formatPrescription(ex))
		return nil
	},
}

func addTargetFlags(c *cobra.Command) {
	c.Flags().IntVarP(&exWeek, "week", "w", 0, "Week number (defaults to the current week)")
	c.Flags().IntVarP(&exDay, "day", "d", 0, "Day number")
	c.MarkFlagRequired("day")
}

func addFieldFlags(c *cobra.Command) {
	c.Flags().StringVarP(&exName, "name", "n", "", "Exercise name")
	c.Flags().StringVarP(&exLoad, "load", "l", "", "Load, e.g. 100kg, 45lb, 12p, 30min or done")
	c.Flags().StringVarP(&exSets, "sets", "s", "", "Number of sets")
	c.Flags().StringVarP(&exReps, "reps", "r", "", "Reps, e.g. 5 or 8-12")
	c.Flags().StringVar(&exRemarks, "remarks", "", "Comma separated remarks")
}

func init() {
	addTargetFlags(addExerciseCmd)
	addFieldFlags(addExerciseCmd)
	addExerciseCmd.MarkFlagRequired("name")

	addTargetFlags(addExercisesCmd)

	addTargetFlags(editExerciseCmd)
	addFieldFlags(editExerciseCmd)

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(addExercisesCmd)
	rootCmd.AddCommand(editExerciseCmd)
}
