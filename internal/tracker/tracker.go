package tracker

//go:generate mockgen -source=tracker.go -destination=backend_mock_test.go -package=tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/barbell/internal/consistency"
	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/sirupsen/logrus"
)

// Keys of the documents kept in the backend.
const (
	KeyWorkouts         = "barbellPro_workouts"
	KeyConsistencyDays  = "barbellPro_consistencyBaselineDays"
	KeyConsistencyStart = "barbellPro_consistencyStartDate"
	KeyNotes            = "barbellPro_notes"
)

const DefaultUndoWindow = 2 * time.Minute

// Backend is a key-value store of JSON documents.
type Backend interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Tracker owns the workout program. Every mutation is written back to the
// backend as a whole document.
type Tracker struct {
	backend         Backend
	log             logrus.FieldLogger
	now             func() time.Time
	undoWindow      time.Duration
	defaultBaseline int

	program *models.WorkoutProgram
	undo    *models.UndoEntry
}

type Option func(*Tracker)

func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) { t.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func WithUndoWindow(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.undoWindow = d
		}
	}
}

func WithDefaultBaseline(n int) Option {
	return func(t *Tracker) { t.defaultBaseline = consistency.ClampBaseline(n) }
}

// New loads the program from the backend. Missing or unreadable data gives
// an empty program.
func New(ctx context.Context, backend Backend, opts ...Option) *Tracker {
	t := &Tracker{
		backend:         backend,
		log:             logrus.StandardLogger(),
		now:             time.Now,
		undoWindow:      DefaultUndoWindow,
		defaultBaseline: consistency.DefaultBaseline,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.program = t.load(ctx)
	return t
}

func (t *Tracker) load(ctx context.Context) *models.WorkoutProgram {
	var p models.WorkoutProgram
	found, err := t.backend.Get(ctx, KeyWorkouts, &p)
	if err != nil {
		t.log.WithError(err).WithField("key", KeyWorkouts).Warn("Stored program unreadable, starting empty")
		return models.NewProgram()
	}
	if !found {
		return models.NewProgram()
	}
	normalize(&p)
	return &p
}

// normalize fills nil collections and repairs an out of range current week.
func normalize(p *models.WorkoutProgram) {
	if p.Weeks == nil {
		p.Weeks = []models.Week{}
	}
	for wi := range p.Weeks {
		w := &p.Weeks[wi]
		if w.Days == nil {
			w.Days = []models.Day{}
		}
		for di := range w.Days {
			d := &w.Days[di]
			if d.Exercises == nil {
				d.Exercises = []models.Exercise{}
			}
			for ei := range d.Exercises {
				if d.Exercises[ei].Remarks == nil {
					d.Exercises[ei].Remarks = []string{}
				}
			}
		}
	}
	if len(p.Weeks) == 0 {
		p.CurrentWeekIndex = -1
	} else if p.CurrentWeekIndex < 0 || p.CurrentWeekIndex >= len(p.Weeks) {
		p.CurrentWeekIndex = len(p.Weeks) - 1
	}
}

// persist writes a document. Failures are logged and the in-memory state
// stays authoritative.
func (t *Tracker) persist(ctx context.Context, key string, value any) {
	if err := t.backend.Set(ctx, key, value); err != nil {
		t.log.WithError(err).WithField("key", key).Warn("Failed to persist, changes will not survive a restart")
	}
}

func (t *Tracker) save(ctx context.Context) {
	t.persist(ctx, KeyWorkouts, t.program)
}

// Program returns the live program. Callers must not modify it.
func (t *Tracker) Program() *models.WorkoutProgram {
	return t.program
}

// Now is the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// ResolveWeek maps -1 to the current week.
func (t *Tracker) ResolveWeek(week int) (int, error) {
	if week < 0 {
		if t.program.CurrentWeek() == nil {
			return 0, ErrNoCurrentWeek
		}
		return t.program.CurrentWeekIndex, nil
	}
	if week >= len(t.program.Weeks) {
		return 0, fmt.Errorf("week %d: %w", week+1, ErrIndexOutOfRange)
	}
	return week, nil
}

func (t *Tracker) week(week int) (*models.Week, error) {
	wi, err := t.ResolveWeek(week)
	if err != nil {
		return nil, err
	}
	return &t.program.Weeks[wi], nil
}

func (t *Tracker) day(week, day int) (*models.Day, error) {
	w, err := t.week(week)
	if err != nil {
		return nil, err
	}
	if day < 0 || day >= len(w.Days) {
		return nil, fmt.Errorf("day %d: %w", day+1, ErrIndexOutOfRange)
	}
	return &w.Days[day], nil
}

func (t *Tracker) exercise(week, day, ex int) (*models.Day, *models.Exercise, error) {
	d, err := t.day(week, day)
	if err != nil {
		return nil, nil, err
	}
	if ex < 0 || ex >= len(d.Exercises) {
		return nil, nil, fmt.Errorf("exercise %d: %w", ex+1, ErrIndexOutOfRange)
	}
	return d, &d.Exercises[ex], nil
}

// Day returns a copy of one day (-1 week means the current one).
func (t *Tracker) Day(week, day int) (models.Day, error) {
	d, err := t.day(week, day)
	if err != nil {
		return models.Day{}, err
	}
	return *d, nil
}

// Exercise returns a copy of one exercise.
func (t *Tracker) Exercise(week, day, index int) (models.Exercise, error) {
	_, ex, err := t.exercise(week, day, index)
	if err != nil {
		return models.Exercise{}, err
	}
	return *ex, nil
}
