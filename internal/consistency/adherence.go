package consistency

import (
	"math"
	"time"

	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/utils"
)

const (
	TrendWeeks      = 6
	DefaultBaseline = 4
	MinBaseline     = 1
	MaxBaseline     = 7
)

type Tier string

const (
	TierGreen Tier = "green"
	TierGold  Tier = "gold"
	TierRed   Tier = "red"
)

var streakMessages = []string{"Keep it up!", "On fire!", "Unstoppable!", "Beast mode!", "Legendary consistency!"}

type Settings struct {
	Baseline  int    // Sessions per week.
	StartDate string // YYYY-MM-DD
}

// WeekCell is one rolling seven day window of the trend, oldest first.
type WeekCell struct {
	Start time.Time
	End   time.Time
	Count int
	Level int
}

type Snapshot struct {
	Rate           int
	Tier           Tier
	Expected       float64
	ElapsedDays    int
	CompletedCount int
	MissedCount    int
	WeeklyTrend    []WeekCell
	Streak         int
	StreakMessage  string
	StartDate      time.Time
	Baseline       int
}

type session struct {
	date      time.Time
	completed bool
}

func ClampBaseline(n int) int {
	if n < MinBaseline {
		return MinBaseline
	}
	if n > MaxBaseline {
		return MaxBaseline
	}
	return n
}

// EarliestDate returns the earliest valid day date in the program.
func EarliestDate(program *models.WorkoutProgram) (string, bool) {
	earliest := ""
	if program == nil {
		return "", false
	}
	for _, w := range program.Weeks {
		for _, d := range w.Days {
			if _, ok := utils.ParseISODate(d.Date); !ok {
				continue
			}
			if earliest == "" || d.Date < earliest {
				earliest = d.Date
			}
		}
	}
	return earliest, earliest != ""
}

// timeline lists every day of the program. Days without a usable date are
// placed weekIndex*7+dayIndex days after start.
func timeline(program *models.WorkoutProgram, start time.Time) []session {
	var out []session
	for wi, w := range program.Weeks {
		for di, d := range w.Days {
			date, ok := utils.ParseISODate(d.Date)
			if !ok {
				date = utils.AddDays(start, wi*7+di)
			}
			out = append(out, session{date: date, completed: d.Completed()})
		}
	}
	return out
}

// Level maps a window's completed count to a heatmap intensity 0-4.
func Level(count, baseline int) int {
	if baseline <= 0 || count <= 0 {
		return 0
	}
	ratio := float64(count) / float64(baseline)
	switch {
	case ratio >= 1:
		return 4
	case ratio >= 0.75:
		return 3
	case ratio >= 0.5:
		return 2
	default:
		return 1
	}
}

// Streak counts the trailing windows that reach baseline.
func Streak(counts []int, baseline int) int {
	streak := 0
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] < baseline {
			break
		}
		streak++
	}
	return streak
}

func StreakMessage(streak int) string {
	if streak <= 0 {
		return ""
	}
	return streakMessages[min(streak, len(streakMessages))-1]
}

func TierFor(rate int) Tier {
	switch {
	case rate >= 100:
		return TierGreen
	case rate >= 75:
		return TierGold
	default:
		return TierRed
	}
}

// Compute measures adherence up to today. It reports false when the program
// has no days, in which case nothing should be shown.
func Compute(program *models.WorkoutProgram, settings Settings, today time.Time) (*Snapshot, bool) {
	if program == nil || program.IsEmpty() {
		return nil, false
	}

	today = utils.StartOfDay(today)
	baseline := ClampBaseline(settings.Baseline)

	start, ok := utils.ParseISODate(settings.StartDate)
	if !ok {
		start = today
		if earliest, found := EarliestDate(program); found {
			start, _ = utils.ParseISODate(earliest)
		}
	}

	elapsed := 0
	if !today.Before(start) {
		elapsed = utils.DaysBetween(start, today) + 1
	}
	expected := float64(baseline) * float64(elapsed) / 7

	sessions := timeline(program, start)
	snap := &Snapshot{
		ElapsedDays: elapsed,
		Expected:    expected,
		StartDate:   start,
		Baseline:    baseline,
	}

	completedDates := make(map[string]bool)
	for _, s := range sessions {
		if s.completed {
			completedDates[utils.FormatISODate(s.date)] = true
		}
		if s.date.Before(start) || s.date.After(today) {
			continue
		}
		switch {
		case s.completed:
			snap.CompletedCount++
		case s.date.Before(today):
			snap.MissedCount++
		}
	}

	if expected > 0 {
		snap.Rate = int(math.Round(float64(snap.CompletedCount) / expected * 100))
	}
	snap.Tier = TierFor(snap.Rate)

	counts := make([]int, 0, TrendWeeks)
	for i := TrendWeeks - 1; i >= 0; i-- {
		end := utils.AddDays(today, -7*i)
		cell := WeekCell{Start: utils.AddDays(end, -6), End: end}
		for d := cell.Start; !d.After(cell.End); d = utils.AddDays(d, 1) {
			if completedDates[utils.FormatISODate(d)] {
				cell.Count++
			}
		}
		cell.Level = Level(cell.Count, baseline)
		snap.WeeklyTrend = append(snap.WeeklyTrend, cell)
		counts = append(counts, cell.Count)
	}

	snap.Streak = Streak(counts, baseline)
	snap.StreakMessage = StreakMessage(snap.Streak)
	return snap, true
}
