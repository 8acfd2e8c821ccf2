package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/misterclayt0n/barbell/internal/models"
)

// ExerciseInput holds the editable fields of an exercise as typed by a user.
type ExerciseInput struct {
	Name    string
	Load    string
	Sets    string
	Reps    string
	Remarks []string
}

// AddExercise appends an exercise to a day (-1 week means the current one).
func (t *Tracker) AddExercise(ctx context.Context, week, day int, in ExerciseInput) (models.Exercise, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Exercise{}, ErrNameRequired
	}
	d, err := t.day(week, day)
	if err != nil {
		return models.Exercise{}, err
	}

	ex := models.NewExercise(in.Name, in.Load, in.Sets, in.Reps, cleanRemarks(in.Remarks))
	d.Exercises = append(d.Exercises, ex)
	t.save(ctx)
	return ex, nil
}

// AddExercises appends already built exercises, as produced by quick-add
// parsing, and returns how many were added.
func (t *Tracker) AddExercises(ctx context.Context, week, day int, exs []models.Exercise) (int, error) {
	d, err := t.day(week, day)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, ex := range exs {
		if strings.TrimSpace(ex.Name) == "" {
			continue
		}
		if ex.ID == "" {
			ex.ID = models.NewID()
		}
		ex.Remarks = cleanRemarks(ex.Remarks)
		d.Exercises = append(d.Exercises, ex)
		added++
	}
	if added > 0 {
		t.save(ctx)
	}
	return added, nil
}

// EditExercise replaces the user-editable fields. The load unit is inferred
// again and the sets cell re-coerced. Completion, subtitle and video link are kept.
func (t *Tracker) EditExercise(ctx context.Context, week, day, index int, in ExerciseInput) (models.Exercise, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Exercise{}, ErrNameRequired
	}
	_, ex, err := t.exercise(week, day, index)
	if err != nil {
		return models.Exercise{}, err
	}

	updated := models.NewExercise(in.Name, in.Load, in.Sets, in.Reps, cleanRemarks(in.Remarks))
	ex.Name = updated.Name
	ex.Load = updated.Load
	ex.LoadUnit = updated.LoadUnit
	ex.Sets = updated.Sets
	ex.Reps = updated.Reps
	ex.Remarks = updated.Remarks
	t.save(ctx)
	return *ex, nil
}

// DeleteExercise removes an exercise; Undo puts it back at the same index.
func (t *Tracker) DeleteExercise(ctx context.Context, week, day, index int) (models.Exercise, error) {
	wi, err := t.ResolveWeek(week)
	if err != nil {
		return models.Exercise{}, err
	}
	d, _, err := t.exercise(wi, day, index)
	if err != nil {
		return models.Exercise{}, err
	}

	deleted := d.Exercises[index]
	d.Exercises = append(d.Exercises[:index], d.Exercises[index+1:]...)
	t.save(ctx)

	t.recordUndo(&models.UndoEntry{
		Kind:      models.UndoExercise,
		WeekIndex: wi,
		DayIndex:  day,
		Index:     index,
		Exercise:  &deleted,
	})
	return deleted, nil
}

// ToggleComplete flips the completed flag and returns the new value.
func (t *Tracker) ToggleComplete(ctx context.Context, week, day, index int) (bool, error) {
	_, ex, err := t.exercise(week, day, index)
	if err != nil {
		return false, err
	}
	ex.Completed = !ex.Completed
	t.save(ctx)
	return ex.Completed, nil
}

func (t *Tracker) AddRemark(ctx context.Context, week, day, index int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyRemark
	}
	_, ex, err := t.exercise(week, day, index)
	if err != nil {
		return err
	}
	ex.Remarks = append(ex.Remarks, text)
	t.save(ctx)
	return nil
}

// EditRemark rewrites a remark. Empty text deletes it.
func (t *Tracker) EditRemark(ctx context.Context, week, day, index, remark int, text string) error {
	_, ex, err := t.exercise(week, day, index)
	if err != nil {
		return err
	}
	if remark < 0 || remark >= len(ex.Remarks) {
		return fmt.Errorf("remark %d: %w", remark+1, ErrIndexOutOfRange)
	}

	if text = strings.TrimSpace(text); text != "" {
		ex.Remarks[remark] = text
	} else {
		ex.Remarks = append(ex.Remarks[:remark], ex.Remarks[remark+1:]...)
	}
	t.save(ctx)
	return nil
}

func cleanRemarks(remarks []string) []string {
	out := []string{}
	for _, r := range remarks {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
