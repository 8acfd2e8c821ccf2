package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/barbell/internal/consistency"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	consistencyBaseline   int
	consistencyStart      string
	consistencyResetStart bool
)

var heatmapColors = []*color.Color{
	color.New(color.Faint),
	color.New(color.FgGreen, color.Faint),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgHiGreen, color.Bold),
}

var consistencyCmd = &cobra.Command{
	Use:   "consistency",
	Short: "Show adherence to the weekly training target, the six week trend and the streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		settings := a.tr.Settings(cmd.Context())
		snap, ok := consistency.Compute(a.tr.Program(), settings, a.tr.Now())
		if !ok {
			fmt.Println("No workouts yet. Import a week to start tracking consistency.")
			return nil
		}

		printBoxedHeader("CONSISTENCY")
		printMetric("Adherence", tierColor(snap.Tier).Sprintf("%d%%", snap.Rate))
		printMetric("Target", fmt.Sprintf("%d sessions per week since %s", snap.Baseline, settings.StartDate))
		printMetric("Completed", fmt.Sprintf("%d of %.1f expected (%d days elapsed)", snap.CompletedCount, snap.Expected, snap.ElapsedDays))
		printMetric("Missed", snap.MissedCount)
		fmt.Println()

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Last six weeks:"))
		var cells []string
		for _, w := range snap.WeeklyTrend {
			cells = append(cells, heatmapColors[w.Level].Sprint("■"))
		}
		fmt.Printf("  %s\n", strings.Join(cells, " "))
		for _, w := range snap.WeeklyTrend {
			fmt.Printf("  %s %s - %s  %d/%d\n",
				heatmapColors[w.Level].Sprint("■"),
				w.Start.Format("Jan 02"), w.End.Format("Jan 02"), w.Count, snap.Baseline)
		}
		fmt.Println()

		if snap.Streak > 0 {
			fmt.Printf("🔥 %d week streak. %s\n", snap.Streak, snap.StreakMessage)
		}
		return nil
	},
}

var consistencySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the weekly target or the start date",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("baseline") && !flags.Changed("start") && !consistencyResetStart {
			return fmt.Errorf("Nothing to change: pass --baseline, --start or --reset-start")
		}
		if flags.Changed("start") && consistencyResetStart {
			return fmt.Errorf("--start and --reset-start cannot be combined")
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if flags.Changed("baseline") {
			n := a.tr.SetBaseline(cmd.Context(), consistencyBaseline)
			fmt.Printf("✅ Target set to %d sessions per week\n", n)
		}
		if flags.Changed("start") {
			if err := a.tr.SetStartDate(cmd.Context(), consistencyStart); err != nil {
				return fmt.Errorf("Failed to set start date: %w", err)
			}
			fmt.Printf("✅ Start date set to %s\n", consistencyStart)
		}
		if consistencyResetStart {
			start, err := resetStartDate(cmd.Context(), a)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Start date reset, now inferred as %s\n", start)
		}
		return nil
	},
}

// resetStartDate forgets the stored start date so it is inferred again from
// the earliest dated day.
func resetStartDate(ctx context.Context, a *app) (string, error) {
	if err := a.st.Delete(ctx, tracker.KeyConsistencyStart); err != nil {
		return "", fmt.Errorf("Failed to reset start date: %w", err)
	}
	return a.tr.Settings(ctx).StartDate, nil
}

func tierColor(t consistency.Tier) *color.Color {
	switch t {
	case consistency.TierGreen:
		return color.New(color.FgGreen, color.Bold)
	case consistency.TierGold:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

func init() {
	consistencySetCmd.Flags().IntVarP(&consistencyBaseline, "baseline", "b", consistency.DefaultBaseline, "Sessions per week (1-7)")
	consistencySetCmd.Flags().StringVarP(&consistencyStart, "start", "s", "", "Program start date (YYYY-MM-DD)")
	consistencySetCmd.Flags().BoolVar(&consistencyResetStart, "reset-start", false, "Forget the start date and infer it from the program again")
	consistencyCmd.AddCommand(consistencySetCmd)
	rootCmd.AddCommand(consistencyCmd)
}
