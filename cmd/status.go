package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/misterclayt0n/barbell/internal/consistency"
	"github.com/misterclayt0n/barbell/internal/lifts"
	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/utils"
	"github.com/spf13/cobra"
)

type programTotals struct {
	weeks, days, trainedDays int
	exercises, completed     int
	volume                   float64
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show totals: weeks, trained days, completed exercises, volume lifted, adherence and sets per lift this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.tr.Program()
		totals := computeTotals(p)

		printBoxedHeader("STATUS")
		printMetric("Weeks", totals.weeks)
		printMetric("Days trained", fmt.Sprintf("%d of %d", totals.trainedDays, totals.days))
		printMetric("Exercises done", fmt.Sprintf("%d of %d", totals.completed, totals.exercises))
		printMetric("Volume lifted", utils.FormatVolume(totals.volume))
		if w := p.CurrentWeek(); w != nil {
			printMetric("Current week", w.Label)
		}

		if snap, ok := consistency.Compute(p, a.tr.Settings(cmd.Context()), a.tr.Now()); ok {
			printMetric("Adherence", tierColor(snap.Tier).Sprintf("%d%%", snap.Rate))
			printMetric("Week streak", fmt.Sprintf("%d weeks", snap.Streak))
		}
		fmt.Println()

		perLift := currentWeekSets(p, lifts.Default())
		if len(perLift) == 0 {
			return nil
		}

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Sets per lift (current week):"))
		names := make([]string, 0, len(perLift))
		for name := range perLift {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  • %s: %d sets\n", color.New(color.FgMagenta, color.Bold).Sprint(name), perLift[name])
		}
		fmt.Println()
		return nil
	},
}

// computeTotals counts the whole program. Volume only includes completed
// exercises with a numeric load.
func computeTotals(p *models.WorkoutProgram) programTotals {
	t := programTotals{weeks: len(p.Weeks)}
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			t.days++
			if d.Completed() {
				t.trainedDays++
			}
			for _, ex := range d.Exercises {
				t.exercises++
				if !ex.Completed {
					continue
				}
				t.completed++
				if weight, ok := lifts.ParseLoadValue(ex.Load); ok && weight > 0 {
					t.volume += weight * float64(ex.Sets.Int()) * float64(models.LeadingInt(ex.Reps))
				}
			}
		}
	}
	return t
}

// currentWeekSets tallies prescribed sets in the current week by lift group,
// falling back to the exercise name.
func currentWeekSets(p *models.WorkoutProgram, c *lifts.Canonicalizer) map[string]int {
	out := make(map[string]int)
	w := p.CurrentWeek()
	if w == nil {
		return out
	}
	for _, d := range w.Days {
		for _, ex := range d.Exercises {
			sets := ex.Sets.Int()
			if sets <= 0 {
				continue
			}
			name, ok := c.Identify(ex.Name)
			if !ok {
				name = ex.Name
			}
			out[name] += sets
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
