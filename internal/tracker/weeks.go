package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/misterclayt0n/barbell/internal/models"
)

type Target string

const (
	TargetNew     Target = "new"
	TargetCurrent Target = "current"
)

func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case TargetNew, "":
		return TargetNew, nil
	case TargetCurrent:
		return TargetCurrent, nil
	}
	return "", fmt.Errorf("unknown import target %q (want new or current)", s)
}

// ImportDays adds parsed days to the program and returns the index of the
// week they landed in. TargetNew (or an empty program) wraps them in a new
// week. TargetCurrent merges each day into a current-week day with the same
// name, case-insensitively, and appends it otherwise. Nothing is removed.
func (t *Tracker) ImportDays(ctx context.Context, days []models.Day, target Target) (int, error) {
	if len(days) == 0 {
		return 0, ErrNoDays
	}

	p := t.program
	if target == TargetNew || len(p.Weeks) == 0 {
		n := len(p.Weeks) + 1
		p.Weeks = append(p.Weeks, models.NewWeek(n, cloneDays(days)))
		p.CurrentWeekIndex = len(p.Weeks) - 1
		t.save(ctx)
		t.log.WithField("week", n).WithField("days", len(days)).Debug("Imported into new week")
		return p.CurrentWeekIndex, nil
	}

	week := p.CurrentWeek()
	if week == nil {
		return 0, ErrNoCurrentWeek
	}

	for _, nd := range cloneDays(days) {
		if existing := findDayByName(week, nd.DayName); existing != nil {
			existing.Exercises = append(existing.Exercises, nd.Exercises...)
			continue
		}
		week.Days = append(week.Days, nd)
	}
	t.save(ctx)
	return p.CurrentWeekIndex, nil
}

func findDayByName(w *models.Week, name string) *models.Day {
	if name == "" {
		return nil
	}
	for i := range w.Days {
		if w.Days[i].DayName != "" && strings.EqualFold(w.Days[i].DayName, name) {
			return &w.Days[i]
		}
	}
	return nil
}

func cloneDays(days []models.Day) []models.Day {
	out := make([]models.Day, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Exercises = append([]models.Exercise{}, d.Exercises...)
		if out[i].ID == "" {
			out[i].ID = models.NewID()
		}
	}
	return out
}

// AddWeek appends an empty week and selects it.
func (t *Tracker) AddWeek(ctx context.Context) int {
	p := t.program
	p.Weeks = append(p.Weeks, models.NewWeek(len(p.Weeks)+1, nil))
	p.CurrentWeekIndex = len(p.Weeks) - 1
	t.save(ctx)
	return p.CurrentWeekIndex
}

func (t *Tracker) SelectWeek(ctx context.Context, week int) error {
	if week < 0 || week >= len(t.program.Weeks) {
		return fmt.Errorf("week %d: %w", week+1, ErrIndexOutOfRange)
	}
	t.program.CurrentWeekIndex = week
	t.save(ctx)
	return nil
}

// DeleteWeek removes a week and keeps the current index valid. The week can
// be restored with Undo.
func (t *Tracker) DeleteWeek(ctx context.Context, week int) (models.Week, error) {
	p := t.program
	if week < 0 || week >= len(p.Weeks) {
		return models.Week{}, fmt.Errorf("week %d: %w", week+1, ErrIndexOutOfRange)
	}

	deleted := p.Weeks[week]
	p.Weeks = append(p.Weeks[:week], p.Weeks[week+1:]...)
	if len(p.Weeks) == 0 {
		p.CurrentWeekIndex = -1
	} else if p.CurrentWeekIndex >= len(p.Weeks) {
		p.CurrentWeekIndex = len(p.Weeks) - 1
	}
	t.save(ctx)

	t.recordUndo(&models.UndoEntry{Kind: models.UndoWeek, Index: week, Week: &deleted})
	return deleted, nil
}

// DeleteDay removes a day from a week (-1 for the current week). The day can
// be restored with Undo.
func (t *Tracker) DeleteDay(ctx context.Context, week, day int) (models.Day, error) {
	wi, err := t.ResolveWeek(week)
	if err != nil {
		return models.Day{}, err
	}
	w := &t.program.Weeks[wi]
	if day < 0 || day >= len(w.Days) {
		return models.Day{}, fmt.Errorf("day %d: %w", day+1, ErrIndexOutOfRange)
	}

	deleted := w.Days[day]
	w.Days = append(w.Days[:day], w.Days[day+1:]...)
	t.save(ctx)

	t.recordUndo(&models.UndoEntry{Kind: models.UndoDay, WeekIndex: wi, Index: day, Day: &deleted})
	return deleted, nil
}
