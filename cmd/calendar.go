package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to list the training days below the grid.
var details bool

type calendarDay struct {
	week int
	day  models.Day
}

// calendarCmd prints the month grid. Dated days are colored by status:
// trained, missed (past and not trained) or planned.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of trained, missed and planned days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		now := a.tr.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		today := utils.StartOfDay(now)

		// Group dated days of the month by day of month.
		byDay := make(map[int][]calendarDay)
		for wi, w := range a.tr.Program().Weeks {
			for _, d := range w.Days {
				t, ok := utils.ParseISODate(d.Date)
				if !ok || t.Year() != year || t.Month() != month {
					continue
				}
				byDay[t.Day()] = append(byDay[t.Day()], calendarDay{week: wi, day: d})
			}
		}

		trained := color.New(color.FgGreen, color.Bold).SprintFunc()
		missed := color.New(color.FgRed).SprintFunc()
		planned := color.New(color.FgYellow).SprintFunc()

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(padCenter(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if entries, ok := byDay[day]; ok {
				date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				switch {
				case anyCompleted(entries):
					dayStr = trained(dayStr)
				case date.Before(today):
					dayStr = missed(dayStr)
				default:
					dayStr = planned(dayStr)
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: trained\n", trained("██"))
		fmt.Printf("  %s: missed\n", missed("██"))
		fmt.Printf("  %s: planned\n", planned("██"))

		if details {
			fmt.Println("\nTraining days:")
			days := make([]int, 0, len(byDay))
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", date.Format("Mon, 02 Jan 2006"))
				for _, e := range byDay[day] {
					done := 0
					for _, ex := range e.day.Exercises {
						if ex.Completed {
							done++
						}
					}
					name := e.day.DayName
					if name == "" {
						name = "Unnamed day"
					}
					fmt.Printf("  %s (Week %d) %d/%d exercises done\n", name, e.week+1, done, len(e.day.Exercises))
				}
			}
		}

		return nil
	},
}

func anyCompleted(entries []calendarDay) bool {
	for _, e := range entries {
		if e.day.Completed() {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "List the training days below the calendar")
}
