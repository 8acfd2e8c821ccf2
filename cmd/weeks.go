package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "List the weeks of the program",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.tr.Program()
		if len(p.Weeks) == 0 {
			fmt.Println("No weeks yet. Import a workout with 'barbell import'.")
			return nil
		}

		for i, w := range p.Weeks {
			done := 0
			for _, d := range w.Days {
				if d.Completed() {
					done++
				}
			}

			marker := "  "
			label := w.Label
			if i == p.CurrentWeekIndex {
				marker = green("▶ ")
				label = green(label)
			}
			fmt.Printf("%s%s %s %s\n", marker, cyan(fmt.Sprintf("%d.", i+1)), label,
				faint(fmt.Sprintf("(%d days, %d trained)", len(w.Days), done)))
		}
		return nil
	},
}

var addWeekCmd = &cobra.Command{
	Use:   "add-week",
	Short: "Append an empty week and make it current",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		wi := a.tr.AddWeek(cmd.Context())
		fmt.Printf("✅ Added %s\n", a.tr.Program().Weeks[wi].Label)
		return nil
	},
}

var selectWeekCmd = &cobra.Command{
	Use:   "select-week [week]",
	Short: "Make a week the current one",
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

		if err := a.tr.SelectWeek(cmd.Context(), wi); err != nil {
			return fmt.Errorf("Failed to select week: %w", err)
		}
		fmt.Printf("✅ Now on %s\n", a.tr.Program().Weeks[wi].Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weeksCmd)
	rootCmd.AddCommand(addWeekCmd)
	rootCmd.AddCommand(selectWeekCmd)
}
