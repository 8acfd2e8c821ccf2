package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showWeek int
	showDay  int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the days and exercises of a week (the current one by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		wi, err := a.tr.ResolveWeek(weekArg(showWeek))
		if err != nil {
			return err
		}
		week := a.tr.Program().Weeks[wi]

		fmt.Printf("%s %s\n\n", green(week.Label), faint(fmt.Sprintf("(%d of %d)", wi+1, len(a.tr.Program().Weeks))))

		if showDay > 0 {
			di, err := dayArg(showDay)
			if err != nil {
				return err
			}
			d, err := a.tr.Day(wi, di)
			if err != nil {
				return err
			}
			printDay(d, di)
			return nil
		}

		if len(week.Days) == 0 {
			fmt.Println(faint("No days in this week. Use 'barbell import --target current' to add some."))
			return nil
		}
		for i, d := range week.Days {
			printDay(d, i)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showWeek, "week", "w", 0, "Week number (defaults to the current week)")
	showCmd.Flags().IntVarP(&showDay, "day", "d", 0, "Only show this day")
	rootCmd.AddCommand(showCmd)
}
