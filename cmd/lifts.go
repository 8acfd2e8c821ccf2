package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/barbell/internal/lifts"
	"github.com/misterclayt0n/barbell/internal/utils"
	"github.com/spf13/cobra"
)

var (
	liftSearch string
	liftLimit  int
	liftGroups bool
)

var liftsCmd = &cobra.Command{
	Use:   "lifts",
	Short: "List tracked lifts, most trained first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := lifts.Default()
		if liftGroups {
			for _, g := range c.Groups() {
				fmt.Println(groupLine(g))
			}
			return nil
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.tr.Program()
		series := lifts.Build(p, c)
		keys := lifts.Filter(lifts.Rank(p, series, c), liftSearch)

		if len(keys) == 0 {
			if liftSearch != "" {
				fmt.Printf("No lifts matching '%s'\n", liftSearch)
			} else {
				fmt.Println("No lifts with a numeric load yet")
			}
			return nil
		}

		width := 10
		for _, k := range keys {
			width = max(width, len([]rune(k)))
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, k := range keys {
			st, _ := lifts.ComputeStats(series.Entries(k))
			name := fmt.Sprintf("%-*s", width, k)
			if c.IsCompound(k) {
				name = boldCyan(name)
			}
			fmt.Printf("  %s  %7s  %s  %s\n",
				name,
				utils.FormatWeight(st.Latest.Weight),
				progressionText(st.Progression),
				faint(fmt.Sprintf("%d sessions", st.Sessions)))
		}
		return nil
	},
}

var liftCmd = &cobra.Command{
	Use:   "lift [name]",
	Short: "Show progression, volume and recent history of one lift",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		c := lifts.Default()
		series := lifts.Build(a.tr.Program(), c)
		key, err := findLift(series, c, query)
		if err != nil {
			return err
		}

		entries := series.Entries(key)
		st, ok := lifts.ComputeStats(entries)
		if !ok {
			return fmt.Errorf("No data for %s", key)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

		fmt.Println(boldGreen(key))
		printMetric("Latest", utils.FormatWeight(st.Latest.Weight))
		printMetric("Progression", progressionText(st.Progression))
		printMetric("Best", utils.FormatWeight(st.BestWeight))
		printMetric("Estimated 1RM", utils.FormatWeight(st.Best1RM))
		printMetric("Total volume", utils.FormatVolume(st.TotalVolume))
		printMetric("Sessions", st.Sessions)
		fmt.Println()

		fmt.Println(boldCyan("History:"))
		fmt.Printf("   %-10s | %-12s | %-8s | %-9s | %s\n", "Date", "Day", "Weight", "Sets×Reps", "Volume")
		fmt.Println("   " + strings.Repeat("─", 60))
		for _, e := range lifts.History(entries, liftLimit) {
			date := e.Date
			if date == "" {
				date = e.WeekLabel
			}
			day := e.DayName
			if day == "" {
				day = "-"
			}
			fmt.Printf("   %-10s | %-12s | %-8s | %-9s | %s\n",
				date, day, utils.FormatWeight(e.Weight),
				fmt.Sprintf("%d×%d", e.Sets, e.Reps), utils.FormatVolume(e.Volume))
		}
		return nil
	},
}

// findLift resolves a user query to a series key: an exact key, then a lift
// group, then a unique partial match.
func findLift(series *lifts.Series, c *lifts.Canonicalizer, query string) (string, error) {
	query = strings.TrimSpace(query)
	for _, k := range series.Keys() {
		if strings.EqualFold(k, query) {
			return k, nil
		}
	}
	if key, ok := c.Identify(query); ok && series.Has(key) {
		return key, nil
	}

	matches := lifts.Filter(series.Keys(), query)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("No lift matching '%s'", query)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("'%s' matches several lifts: %s", query, strings.Join(matches, ", "))
}

// groupLine renders one lift group and the aliases that map onto it.
func groupLine(g lifts.Group) string {
	name := g.Name
	if g.Compound {
		name += " (compound)"
	}
	return fmt.Sprintf("  %-24s %s", name, strings.Join(g.Aliases, ", "))
}

func progressionText(v float64) string {
	switch {
	case v > 0:
		return green(utils.Signed(v))
	case v < 0:
		return red(utils.Signed(v))
	}
	return faint(utils.Signed(v))
}

func init() {
	liftsCmd.Flags().StringVarP(&liftSearch, "search", "s", "", "Only list lifts containing this text")
	liftsCmd.Flags().BoolVarP(&liftGroups, "groups", "g", false, "List the lift groups and their aliases instead")
	liftCmd.Flags().IntVarP(&liftLimit, "limit", "l", 10, "Number of history entries to display")
	rootCmd.AddCommand(liftsCmd)
	rootCmd.AddCommand(liftCmd)
}
