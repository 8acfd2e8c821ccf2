package tracker

import (
	"context"
	"strings"

	"github.com/misterclayt0n/barbell/internal/consistency"
	"github.com/misterclayt0n/barbell/internal/utils"
)

// Settings returns the consistency settings. A missing start date is
// inferred from the earliest dated day (or today) and stored, so it stays
// put until the user changes it.
func (t *Tracker) Settings(ctx context.Context) consistency.Settings {
	s := consistency.Settings{Baseline: t.defaultBaseline}

	var baseline int
	found, err := t.backend.Get(ctx, KeyConsistencyDays, &baseline)
	if err != nil {
		t.log.WithError(err).WithField("key", KeyConsistencyDays).Warn("Stored baseline unreadable, using default")
	} else if found {
		s.Baseline = baseline
	}
	s.Baseline = consistency.ClampBaseline(s.Baseline)

	var start string
	found, err = t.backend.Get(ctx, KeyConsistencyStart, &start)
	if err != nil {
		t.log.WithError(err).WithField("key", KeyConsistencyStart).Warn("Stored start date unreadable")
	}
	if _, ok := utils.ParseISODate(start); found && err == nil && ok {
		s.StartDate = start
		return s
	}

	if earliest, ok := consistency.EarliestDate(t.program); ok {
		s.StartDate = earliest
	} else {
		s.StartDate = utils.FormatISODate(t.now())
	}
	// An empty program has nothing to anchor the date to yet.
	if !t.program.IsEmpty() {
		t.persist(ctx, KeyConsistencyStart, s.StartDate)
	}
	return s
}

// SetBaseline stores the sessions-per-week target, clamped to 1-7.
func (t *Tracker) SetBaseline(ctx context.Context, n int) int {
	n = consistency.ClampBaseline(n)
	t.persist(ctx, KeyConsistencyDays, n)
	return n
}

// SetStartDate stores the program start date. It must be a strict YYYY-MM-DD date.
func (t *Tracker) SetStartDate(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)
	if _, ok := utils.ParseISODate(date); !ok {
		return ErrInvalidStartDate
	}
	t.persist(ctx, KeyConsistencyStart, date)
	return nil
}

func (t *Tracker) Notes(ctx context.Context) string {
	var notes string
	if _, err := t.backend.Get(ctx, KeyNotes, &notes); err != nil {
		t.log.WithError(err).WithField("key", KeyNotes).Warn("Stored notes unreadable")
		return ""
	}
	return notes
}

func (t *Tracker) SetNotes(ctx context.Context, text string) {
	t.persist(ctx, KeyNotes, text)
}
