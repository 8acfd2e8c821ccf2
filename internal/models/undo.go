package models

import "time"

type UndoKind string

const (
	UndoExercise UndoKind = "exercise"
	UndoDay      UndoKind = "day"
	UndoWeek     UndoKind = "week"
)

// UndoEntry is the single pending undo slot: the deleted entity plus the
// position it was removed from.
type UndoEntry struct {
	Kind      UndoKind  `toml:"kind"`
	WeekIndex int       `toml:"week_index"`
	DayIndex  int       `toml:"day_index"`
	Index     int       `toml:"index"`
	Exercise  *Exercise `toml:"exercise,omitempty"`
	Day       *Day      `toml:"day,omitempty"`
	Week      *Week     `toml:"week,omitempty"`
	Expires   time.Time `toml:"expires"`
}

// Label names the deleted entity for messages.
func (u *UndoEntry) Label() string {
	switch u.Kind {
	case UndoExercise:
		if u.Exercise != nil {
			return u.Exercise.Name
		}
	case UndoDay:
		if u.Day != nil {
			return u.Day.Title(u.Index)
		}
	case UndoWeek:
		if u.Week != nil {
			return u.Week.Label
		}
	}
	return string(u.Kind)
}
