package tracker

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/barbell/internal/models"
)

// recordUndo replaces any pending undo with e.
func (t *Tracker) recordUndo(e *models.UndoEntry) {
	e.Expires = t.now().Add(t.undoWindow)
	t.undo = e
}

// PendingUndo returns the pending undo entry, or nil when there is none or
// it has expired.
func (t *Tracker) PendingUndo() *models.UndoEntry {
	if t.undo == nil {
		return nil
	}
	if t.now().After(t.undo.Expires) {
		t.undo = nil
		return nil
	}
	return t.undo
}

// RestoreUndo installs an entry saved by an earlier process. Expired
// entries are ignored.
func (t *Tracker) RestoreUndo(e *models.UndoEntry) {
	if e == nil || t.now().After(e.Expires) {
		return
	}
	t.undo = e
}

// Undo reverts the last delete, putting the entity back at its old index.
// The entry is consumed: a second call returns ErrNothingToUndo.
func (t *Tracker) Undo(ctx context.Context) (*models.UndoEntry, error) {
	e := t.PendingUndo()
	if e == nil {
		return nil, ErrNothingToUndo
	}
	t.undo = nil

	p := t.program
	switch e.Kind {
	case models.UndoExercise:
		if e.Exercise == nil || e.WeekIndex < 0 || e.WeekIndex >= len(p.Weeks) {
			return nil, fmt.Errorf("undo %s: %w", e.Label(), ErrIndexOutOfRange)
		}
		w := &p.Weeks[e.WeekIndex]
		if e.DayIndex < 0 || e.DayIndex >= len(w.Days) {
			return nil, fmt.Errorf("undo %s: %w", e.Label(), ErrIndexOutOfRange)
		}
		d := &w.Days[e.DayIndex]
		d.Exercises = insertAt(d.Exercises, e.Index, *e.Exercise)

	case models.UndoDay:
		if e.Day == nil || e.WeekIndex < 0 || e.WeekIndex >= len(p.Weeks) {
			return nil, fmt.Errorf("undo %s: %w", e.Label(), ErrIndexOutOfRange)
		}
		w := &p.Weeks[e.WeekIndex]
		w.Days = insertAt(w.Days, e.Index, *e.Day)

	case models.UndoWeek:
		if e.Week == nil {
			return nil, fmt.Errorf("undo %s: %w", e.Label(), ErrIndexOutOfRange)
		}
		p.Weeks = insertAt(p.Weeks, e.Index, *e.Week)
		p.CurrentWeekIndex = min(e.Index, len(p.Weeks)-1)

	default:
		return nil, ErrNothingToUndo
	}

	t.save(ctx)
	return e, nil
}

// insertAt inserts v at i, clamping i to the slice bounds.
func insertAt[T any](s []T, i int, v T) []T {
	i = max(0, min(i, len(s)))
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
