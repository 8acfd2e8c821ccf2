package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/spf13/cobra"
)

var (
	cyan    = color.New(color.FgCyan).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	red     = color.New(color.FgRed).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// padCenter centers s in a field of width, padding both sides.
func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func completionMark(done bool) string {
	if done {
		return green("✔")
	}
	return faint("·")
}

// formatPrescription renders "100kg 5×5" from the raw cells.
func formatPrescription(ex models.Exercise) string {
	var parts []string
	if ex.Load != "" {
		parts = append(parts, ex.Load)
	}
	switch {
	case !ex.Sets.IsEmpty() && ex.Reps != "":
		parts = append(parts, ex.Sets.String()+"×"+ex.Reps)
	case !ex.Sets.IsEmpty():
		parts = append(parts, ex.Sets.String()+" sets")
	case ex.Reps != "":
		parts = append(parts, ex.Reps+" reps")
	}
	return strings.Join(parts, " ")
}

// printDay prints one day with its exercises numbered from 1.
func printDay(d models.Day, index int) {
	header := fmt.Sprintf("%d. %s", index+1, d.Title(index))
	if d.Date != "" {
		header += " " + faint("("+d.Date+")")
	}
	fmt.Println(yellow(header))

	if len(d.Exercises) == 0 {
		fmt.Println(faint("   No exercises"))
		return
	}

	nameWidth := 8
	for _, ex := range d.Exercises {
		nameWidth = max(nameWidth, len([]rune(ex.Name)))
	}

	for i, ex := range d.Exercises {
		fmt.Printf("   %s %s %-*s  %s\n",
			cyan(fmt.Sprintf("%2d.", i+1)),
			completionMark(ex.Completed),
			nameWidth, ex.Name,
			formatPrescription(ex))
		if ex.Subtitle != "" {
			fmt.Printf("         %s\n", magenta(ex.Subtitle))
		}
		for r, remark := range ex.Remarks {
			fmt.Printf("         %s %s\n", faint(fmt.Sprintf("%d)", r+1)), remark)
		}
		if ex.YoutubeURL != "" {
			fmt.Printf("         %s %s\n", red("▶"), ex.YoutubeURL)
		}
	}
}

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("Failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("Failed to read file: %w", err)
	}
	return string(data), nil
}

// confirm asks a yes/no question on stdin. Anything but y/yes is a no.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
