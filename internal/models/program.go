package models

import (
	"fmt"

	"github.com/google/uuid"
)

type WorkoutProgram struct {
	Weeks            []Week `json:"weeks"`
	CurrentWeekIndex int    `json:"currentWeekIndex"`
}

type Week struct {
	ID         string `json:"id"`
	WeekNumber int    `json:"weekNumber"`
	Label      string `json:"label"`
	Days       []Day  `json:"days"`
}

type Day struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // YYYY-MM-DD, empty when unknown.
	DayName   string     `json:"dayName"`
	Exercises []Exercise `json:"exercises"`
}

func NewProgram() *WorkoutProgram {
	return &WorkoutProgram{Weeks: []Week{}, CurrentWeekIndex: -1}
}

func NewID() string {
	return uuid.New().String()
}

// NewWeek returns an empty week labelled "Week n".
func NewWeek(n int, days []Day) Week {
	if days == nil {
		days = []Day{}
	}
	return Week{
		ID:         NewID(),
		WeekNumber: n,
		Label:      fmt.Sprintf("Week %d", n),
		Days:       days,
	}
}

func (p *WorkoutProgram) CurrentWeek() *Week {
	if p.CurrentWeekIndex < 0 || p.CurrentWeekIndex >= len(p.Weeks) {
		return nil
	}
	return &p.Weeks[p.CurrentWeekIndex]
}

func (p *WorkoutProgram) IsEmpty() bool {
	for _, w := range p.Weeks {
		if len(w.Days) > 0 {
			return false
		}
	}
	return true
}

// Completed reports whether at least one exercise of the day is done.
func (d Day) Completed() bool {
	for _, ex := range d.Exercises {
		if ex.Completed {
			return true
		}
	}
	return false
}

// Title is the display name of a day tab.
func (d Day) Title(index int) string {
	if d.DayName != "" {
		return d.DayName
	}
	return fmt.Sprintf("Day %d", index+1)
}
