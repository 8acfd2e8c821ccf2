package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/barbell/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterDay  string
	filterDate string
	filterWeek int
)

// historyCmd lists every day of the program grouped by week.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the training history, optionally filtered by day name, date and/or week",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if filterDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", filterDate, time.Local)
			if err != nil {
				parsed, err = time.ParseInLocation("02/01/06", filterDate, time.Local)
			}
			if err != nil {
				return fmt.Errorf("failed to parse date: %w", err)
			}
			date = utils.FormatISODate(parsed)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		shown := 0
		for wi, w := range a.tr.Program().Weeks {
			if filterWeek > 0 && wi != filterWeek-1 {
				continue
			}

			printedWeek := false
			for di, d := range w.Days {
				// Case insensitive filtering by day name.
				if filterDay != "" && !strings.EqualFold(d.DayName, filterDay) {
					continue
				}
				if date != "" && d.Date != date {
					continue
				}

				if !printedWeek {
					fmt.Printf("%s\n", green(w.Label))
					printedWeek = true
				}

				done := 0
				for _, ex := range d.Exercises {
					if ex.Completed {
						done++
					}
				}
				when := d.Date
				if when == "" {
					when = "undated"
				}
				fmt.Printf("  %s %-12s %s | %d/%d exercises done\n",
					completionMark(d.Completed()), d.Title(di), faint(when), done, len(d.Exercises))
				shown++
			}
			if printedWeek {
				fmt.Println()
			}
		}

		if shown == 0 {
			fmt.Println("No matching days")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day name (case insensitive)")
	historyCmd.Flags().StringVar(&filterDate, "date", "", "Filter by date (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&filterWeek, "week", "w", 0, "Filter by week number")
}
