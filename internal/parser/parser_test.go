package parser

import (
	"fmt"
	"testing"

	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onlyExercise(t *testing.T, text string) models.Exercise {
	t.Helper()
	days := Parse("Monday\n" + text)
	require.Len(t, days, 1)
	require.Len(t, days[0].Exercises, 1)
	return days[0].Exercises[0]
}

func TestParseDateLines(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantDate string
	}{
		{"Thursday 25/12/25", "Thursday", "2025-12-25"},
		{"friday 26/12/2025", "Friday", "2025-12-26"},
		{"MONDAY 1/2/24 upper body", "Monday", "2024-02-01"},
		{"15/12/2025", "", "2025-12-15"},
		{"5/1/26", "", "2026-01-05"},
		{"31/02/25", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			days := Parse(tt.line)
			require.Len(t, days, 1)
			assert.Equal(t, tt.wantName, days[0].DayName)
			assert.Equal(t, tt.wantDate, days[0].Date)
			assert.Empty(t, days[0].Exercises)
			assert.NotEmpty(t, days[0].ID)
		})
	}
}

func TestParseDate_TwoDigitYearPivot(t *testing.T) {
	for yy := 0; yy < 100; yy += 11 {
		want := fmt.Sprintf("%d-06-01", 2000+yy)
		assert.Equal(t, want, parseDate(fmt.Sprintf("1/6/%02d", yy)))
	}
	assert.Equal(t, "1999-06-01", parseDate("1/6/1999"))
}

func TestParse_HeaderLayout(t *testing.T) {
	ex := onlyExercise(t, "Bench Press\tLoad\tSets\tReps\n\t60\t5\t5")

	assert.Equal(t, "Bench Press", ex.Name)
	assert.Equal(t, "60", ex.Load)
	assert.Equal(t, models.NumericSets(5), ex.Sets)
	assert.Equal(t, "5", ex.Reps)
	assert.Equal(t, models.UnitKg, ex.LoadUnit)
	assert.Empty(t, ex.Subtitle)
	assert.Empty(t, ex.Remarks)
	assert.False(t, ex.Completed)
}

func TestParse_HeaderLayoutWithSubtitleAndRemarks(t *testing.T) {
	text := "Incline DB Bench\tLoad\tSets\tReps\tslow eccentric\n" +
		"Med incline\t30lb\t3\t8-10\tpause at chest\n" +
		"https://youtu.be/abc123 form check\n" +
		"elbows in\tbrace"

	ex := onlyExercise(t, text)
	assert.Equal(t, "Incline DB Bench", ex.Name)
	assert.Equal(t, "Med incline", ex.Subtitle)
	assert.Equal(t, "30lb", ex.Load)
	assert.Equal(t, models.UnitLb, ex.LoadUnit)
	assert.Equal(t, models.NumericSets(3), ex.Sets)
	assert.Equal(t, "8-10", ex.Reps)
	assert.Equal(t, "https://youtu.be/abc123", ex.YoutubeURL)
	assert.Equal(t, []string{"slow eccentric", "pause at chest", "form check", "elbows in", "brace"}, ex.Remarks)
}

func TestParse_HeaderLayoutLoadInFirstCell(t *testing.T) {
	ex := onlyExercise(t, "Leg Press\tLoad\tSets\tReps\n14p\t4\t12\tsquat stance")
	assert.Equal(t, "14p", ex.Load)
	assert.Equal(t, models.UnitPlates, ex.LoadUnit)
	assert.Equal(t, models.NumericSets(4), ex.Sets)
	assert.Equal(t, "12", ex.Reps)
	assert.Equal(t, []string{"squat stance"}, ex.Remarks)
}

func TestParse_SingleLineLayout(t *testing.T) {
	ex := onlyExercise(t, "Squat\t100kg\t3\t5")
	assert.Equal(t, "Squat", ex.Name)
	assert.Equal(t, "100kg", ex.Load)
	assert.Equal(t, models.NumericSets(3), ex.Sets)
	assert.Equal(t, "5", ex.Reps)
	assert.Equal(t, models.UnitKg, ex.LoadUnit)
}

func TestParse_SingleLineTextLoad(t *testing.T) {
	ex := onlyExercise(t, "Cable Fly\tgo heavy\t2-3\t12\tsqueeze")
	assert.Equal(t, "go heavy", ex.Load)
	assert.Equal(t, models.Sets{Kind: models.SetsRaw, Raw: "2-3"}, ex.Sets)
	assert.Equal(t, "12", ex.Reps)
	assert.Equal(t, []string{"squeeze"}, ex.Remarks)
}

func TestParse_SingleLineKeepsSecondLineAsRemarks(t *testing.T) {
	ex := onlyExercise(t, "Deadlift\t140\t1\t5\nhook grip\tno straps")
	assert.Equal(t, "140", ex.Load)
	assert.Equal(t, []string{"hook grip", "no straps"}, ex.Remarks)
}

func TestParse_NameThenDataRow(t *testing.T) {
	ex := onlyExercise(t, "Chin Up\nAssisted\t10\t3\t8\nlast set to failure")
	assert.Equal(t, "Chin Up", ex.Name)
	assert.Equal(t, "Assisted", ex.Subtitle)
	assert.Equal(t, "10", ex.Load)
	assert.Equal(t, models.NumericSets(3), ex.Sets)
	assert.Equal(t, "8", ex.Reps)
	assert.Equal(t, []string{"last set to failure"}, ex.Remarks)
}

func TestParse_URLInName(t *testing.T) {
	ex := onlyExercise(t, "Pendlay Row https://www.youtube.com/watch?v=xyz\t70\t4\t6")
	assert.Equal(t, "Pendlay Row", ex.Name)
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", ex.YoutubeURL)
}

func TestParse_OnlyFirstURLKept(t *testing.T) {
	ex := onlyExercise(t, "Squat\t100\t3\t5\nhttps://youtu.be/one\nhttps://youtu.be/two")
	assert.Equal(t, "https://youtu.be/one", ex.YoutubeURL)
	assert.Equal(t, []string{"https://youtu.be/two"}, ex.Remarks)
}

func TestParse_DoneLoad(t *testing.T) {
	ex := onlyExercise(t, "Plank\tDone\t3\t60s")
	assert.Equal(t, "Done", ex.Load)
	assert.Equal(t, models.NumericSets(3), ex.Sets)
}

func TestParse_DaysAndBoundaries(t *testing.T) {
	text := "Thursday 25/12/25\n" +
		"Load\tSets\tReps\n" +
		"Bench Press\t60\t5\t5\n" +
		"\n" +
		"Row\tLoad\tSets\tReps\n" +
		"\t50\t4\t8\n" +
		"Squat\tLoad\tSets\tReps\n" +
		"\t100\t5\t5\n" +
		"\r\n" +
		"Saturday\n" +
		"Deadlift\t140\t1\t5\n"

	days := Parse(text)
	require.Len(t, days, 2)

	assert.Equal(t, "Thursday", days[0].DayName)
	require.Len(t, days[0].Exercises, 3)
	assert.Equal(t, "Bench Press", days[0].Exercises[0].Name)
	assert.Equal(t, "Row", days[0].Exercises[1].Name)
	assert.Equal(t, "50", days[0].Exercises[1].Load)
	assert.Equal(t, "Squat", days[0].Exercises[2].Name)
	assert.Equal(t, "100", days[0].Exercises[2].Load)

	assert.Equal(t, "Saturday", days[1].DayName)
	assert.Empty(t, days[1].Date)
	require.Len(t, days[1].Exercises, 1)

	assert.Equal(t, Summary{DayCount: 2, ExerciseCount: 4}, Summarize(days))
}

func TestParse_DayNameAttachesToDateLine(t *testing.T) {
	days := Parse("15/12/2025\nWenesday\nSquat\t100\t5\t5")
	require.Len(t, days, 1)
	assert.Equal(t, "Wednesday", days[0].DayName)
	assert.Equal(t, "2025-12-15", days[0].Date)
	assert.Len(t, days[0].Exercises, 1)
}

func TestParse_DayNameAfterExercisesStartsNewDay(t *testing.T) {
	days := Parse("15/12/2025\nSquat\t100\t5\t5\nTuesday\nBench\t60\t5\t5")
	require.Len(t, days, 2)
	assert.Equal(t, "", days[0].DayName)
	assert.Equal(t, "Tuesday", days[1].DayName)
	assert.Equal(t, "", days[1].Date)
	assert.Equal(t, "Bench", days[1].Exercises[0].Name)
}

func TestParse_ExercisesWithoutDayLineAreDropped(t *testing.T) {
	days := Parse("Squat\t100\t3\t5\n\nBench\t60\t5\t5")
	assert.NotNil(t, days)
	assert.Empty(t, days)
	assert.Equal(t, Summary{}, Summarize(days))

	days = Parse("Squat\t100\t3\t5\n\nFriday\nBench\t60\t5\t5")
	require.Len(t, days, 1)
	assert.Equal(t, "Friday", days[0].DayName)
	require.Len(t, days[0].Exercises, 1)
	assert.Equal(t, "Bench", days[0].Exercises[0].Name)
}

func TestParse_DayNameLineEndsPendingExercise(t *testing.T) {
	days := Parse("25/12/25\nSquat\t100\t5\t5\nThursday\nBench\t60\t5\t5")
	require.Len(t, days, 2)

	assert.Equal(t, "2025-12-25", days[0].Date)
	assert.Empty(t, days[0].DayName)
	require.Len(t, days[0].Exercises, 1)
	assert.Equal(t, "Squat", days[0].Exercises[0].Name)
	assert.Empty(t, days[0].Exercises[0].Remarks)

	assert.Equal(t, "Thursday", days[1].DayName)
	assert.Empty(t, days[1].Date)
	require.Len(t, days[1].Exercises, 1)
	assert.Equal(t, "Bench", days[1].Exercises[0].Name)
}

func TestParse_Tolerant(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "Load\tSets\tReps", "\t\t\t", "\t60\t5\t5"} {
		days := Parse(text)
		assert.NotNil(t, days)
		assert.Equal(t, 0, Summarize(days).ExerciseCount, "%q", text)
	}
}

func TestLooksLikeLoad(t *testing.T) {
	for _, s := range []string{"", "60", "62.5", "62.5kg", "30 lb", "14p", "2m", "10min", "DONE"} {
		assert.True(t, looksLikeLoad(s), s)
	}
	for _, s := range []string{"go heavy", "Med incline", "kg60", "60 kg x2"} {
		assert.False(t, looksLikeLoad(s), s)
	}
	assert.True(t, looksLikeSetsReps("8 plates @10"))
	assert.False(t, looksLikeSetsReps("AMRAP"))
	assert.False(t, looksLikeSetsReps(""))
}

func TestParseQuickAdd(t *testing.T) {
	exs := ParseQuickAdd("Curl\t12.5\t3\t12\tsupinate\tslow\n\n\tno name\t1\t1\nFace Pull\t20lb")
	require.Len(t, exs, 2)

	assert.Equal(t, "Curl", exs[0].Name)
	assert.Equal(t, models.NumericSets(3), exs[0].Sets)
	assert.Equal(t, []string{"supinate", "slow"}, exs[0].Remarks)

	assert.Equal(t, "Face Pull", exs[1].Name)
	assert.Equal(t, models.UnitLb, exs[1].LoadUnit)
	assert.True(t, exs[1].Sets.IsEmpty())
	assert.Empty(t, exs[1].Remarks)
	assert.NotEqual(t, exs[0].ID, exs[1].ID)
}

func TestParseRemarkList(t *testing.T) {
	assert.Equal(t, []string{"pause", "belt"}, ParseRemarkList(" pause, ,belt ,"))
	assert.Equal(t, []string{}, ParseRemarkList("  "))
}
