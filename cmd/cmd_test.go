package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/barbell/internal/lifts"
	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/storage"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Monday 10/03/25\n" +
	"Back Squat\t100kg\t5\t5\n" +
	"\n" +
	"Bench Press\t60\t3\t8\n" +
	"\n" +
	"Curl\t12.5\t3\t12\n"

func sampleProgram(t *testing.T) *models.WorkoutProgram {
	t.Helper()
	days, err := parseWorkout(sampleText)
	require.NoError(t, err)
	require.Len(t, days, 1)

	p := models.NewProgram()
	p.Weeks = append(p.Weeks, models.NewWeek(1, days))
	p.CurrentWeekIndex = 0
	return p
}

func TestParseIndex(t *testing.T) {
	i, err := parseIndex("3", "exercise")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	for _, bad := range []string{"0", "-1", "x", ""} {
		_, err := parseIndex(bad, "exercise")
		assert.Error(t, err, bad)
	}
}

func TestWeekAndDayArgs(t *testing.T) {
	assert.Equal(t, -1, weekArg(0))
	assert.Equal(t, 1, weekArg(2))

	d, err := dayArg(1)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
	_, err = dayArg(0)
	assert.Error(t, err)
}

func TestFormatPrescription(t *testing.T) {
	assert.Equal(t, "100kg 5×5", formatPrescription(models.NewExercise("Squat", "100kg", "5", "5", nil)))
	assert.Equal(t, "3 sets", formatPrescription(models.NewExercise("Plank", "", "3", "", nil)))
	assert.Equal(t, "done 8-12 reps", formatPrescription(models.NewExercise("Dips", "done", "", "8-12", nil)))
	assert.Equal(t, "", formatPrescription(models.NewExercise("Walk", "", "", "", nil)))
}

func TestParseWorkout_Empty(t *testing.T) {
	days, err := parseWorkout("")
	require.NoError(t, err)
	assert.Empty(t, days)

	// Exercises without a day line have nowhere to go.
	days, err = parseWorkout("Squat\t100\t5\t5")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	st, err := storage.NewStorage("file:" + filepath.Join(t.TempDir(), "barbell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestHasStoredProgram(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	stored, err := hasStoredProgram(ctx, st)
	require.NoError(t, err)
	assert.False(t, stored)

	require.NoError(t, st.Set(ctx, tracker.KeyWorkouts, models.NewProgram()))
	stored, err = hasStoredProgram(ctx, st)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestResetStartDate(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	a := &app{st: st, tr: tracker.New(ctx, st)}

	days, err := parseWorkout(sampleText)
	require.NoError(t, err)
	_, err = a.tr.ImportDays(ctx, days, tracker.TargetNew)
	require.NoError(t, err)
	require.NoError(t, a.tr.SetStartDate(ctx, "2024-01-01"))
	assert.Equal(t, "2024-01-01", a.tr.Settings(ctx).StartDate)

	start, err := resetStartDate(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", start)

	// The inferred date is stored again.
	stored, err := st.Exists(ctx, tracker.KeyConsistencyStart)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestExportDump(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	require.NoError(t, st.Set(ctx, tracker.KeyNotes, "deload next week"))
	require.NoError(t, st.Set(ctx, tracker.KeyConsistencyDays, 4))

	var buf bytes.Buffer
	keys, err := exportDump(ctx, st, &buf, storage.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{tracker.KeyConsistencyDays, tracker.KeyNotes}, keys)
	assert.Contains(t, buf.String(), tracker.KeyNotes)

	keys, err = exportDump(ctx, newTestStorage(t), &buf, storage.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestGroupLine(t *testing.T) {
	groups := lifts.Default().Groups()
	require.NotEmpty(t, groups)
	assert.Equal(t, "Bench Press", groups[0].Name)

	line := groupLine(groups[0])
	assert.Contains(t, line, "Bench Press (compound)")
	assert.Contains(t, line, "bench press, pause bench press")

	line = groupLine(lifts.Group{Name: "Incline Press", Aliases: []string{"incline"}})
	assert.NotContains(t, line, "compound")
	assert.Contains(t, line, "incline")
}

func TestFindLift(t *testing.T) {
	c := lifts.Default()
	series := lifts.Build(sampleProgram(t), c)

	tests := []struct {
		query string
		want  string
	}{
		{"squat", "Squat"},
		{"high bar squat", "Squat"},
		{"curl", "Curl"},
		{"bench", "Bench Press"},
	}
	for _, tt := range tests {
		got, err := findLift(series, c, tt.query)
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.want, got, tt.query)
	}

	_, err := findLift(series, c, "deadlift")
	assert.ErrorContains(t, err, "No lift matching")
	_, err = findLift(series, c, "s")
	assert.ErrorContains(t, err, "several lifts")
}

func TestComputeTotals(t *testing.T) {
	p := sampleProgram(t)
	p.Weeks[0].Days[0].Exercises[0].Completed = true

	totals := computeTotals(p)
	assert.Equal(t, 1, totals.weeks)
	assert.Equal(t, 1, totals.days)
	assert.Equal(t, 1, totals.trainedDays)
	assert.Equal(t, 3, totals.exercises)
	assert.Equal(t, 1, totals.completed)
	assert.InDelta(t, 2500.0, totals.volume, 0.001)
}

func TestCurrentWeekSets(t *testing.T) {
	sets := currentWeekSets(sampleProgram(t), lifts.Default())
	assert.Equal(t, map[string]int{"Squat": 5, "Bench Press": 3, "Curl": 3}, sets)

	assert.Empty(t, currentWeekSets(models.NewProgram(), lifts.Default()))
}
