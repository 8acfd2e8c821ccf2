package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/barbell/internal/models"
)

var (
	// combinedDateRe matches: "Thursday 25/12/25", "friday 26/12/2025 upper"
	combinedDateRe = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+(\d{1,2}/\d{1,2}/\d{2,4})`)

	// dateOnlyRe matches: "15/12/2025", "15/12/25"
	dateOnlyRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})\s*$`)

	// headerOnlyRe matches a bare "Load<TAB>Sets<TAB>Reps" row.
	headerOnlyRe = regexp.MustCompile(`(?i)^load\s+sets\s+reps$`)

	// loadRe matches: 60, 62.5kg, 30 lb, 14p, 2m, 10min, Done
	loadRe = regexp.MustCompile(`(?i)^(\d+\.?\d*\s*(kg|lb|p|m|min)?|done)$`)

	youtubeRe = regexp.MustCompile(`(https?://(www\.)?(youtube\.com|youtu\.be)\S+)`)
)

var dayAliases = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"wenesday":  "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
}

// Summary is the preview shown before an import is confirmed.
type Summary struct {
	DayCount      int
	ExerciseCount int
}

func Summarize(days []models.Day) Summary {
	s := Summary{DayCount: len(days)}
	for _, d := range days {
		s.ExerciseCount += len(d.Exercises)
	}
	return s
}

type state struct {
	days  []models.Day
	block []string
}

func (s *state) startDay(date, name string) {
	s.days = append(s.days, models.Day{
		ID:        models.NewID(),
		Date:      date,
		DayName:   name,
		Exercises: []models.Exercise{},
	})
}

func (s *state) current() *models.Day {
	if len(s.days) == 0 {
		return nil
	}
	return &s.days[len(s.days)-1]
}

// flush turns the accumulated block into an exercise on the current day.
// Exercises pasted before any date or day-name line are dropped.
func (s *state) flush() {
	if len(s.block) == 0 {
		return
	}
	ex, ok := parseExerciseBlock(s.block)
	s.block = nil
	cur := s.current()
	if !ok || cur == nil {
		return
	}
	cur.Exercises = append(cur.Exercises, ex)
}

// Parse turns pasted spreadsheet text into days. It never fails: lines it
// cannot make sense of are folded into the surrounding exercise or skipped.
func Parse(text string) []models.Day {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	s := &state{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		// Blank line = exercise boundary
		if line == "" {
			s.flush()
			continue
		}

		if name, date, ok := parseDateLine(line); ok {
			s.flush()
			s.startDay(date, name)
			continue
		}

		if name, ok := parseDayNameLine(line); ok {
			s.flush()
			if cur := s.current(); cur != nil && cur.DayName == "" && len(cur.Exercises) == 0 {
				cur.DayName = name
			} else {
				s.startDay("", name)
			}
			continue
		}

		if headerOnlyRe.MatchString(line) {
			continue
		}

		// A "Name Load Sets Reps" row starts a new exercise even without a blank line.
		if cells := splitCells(raw); len(s.block) > 0 && cells[0] != "" && isExerciseHeader(cells) {
			s.flush()
		}
		s.block = append(s.block, raw)
	}
	s.flush()

	if s.days == nil {
		return []models.Day{}
	}
	return s.days
}

func parseDateLine(line string) (name, date string, ok bool) {
	if m := combinedDateRe.FindStringSubmatch(line); m != nil {
		return capitalize(m[1]), parseDate(m[2]), true
	}
	if m := dateOnlyRe.FindStringSubmatch(line); m != nil {
		return "", parseDate(m[1]), true
	}
	return "", "", false
}

func parseDayNameLine(line string) (string, bool) {
	name, ok := dayAliases[strings.ToLower(strings.TrimSpace(line))]
	return name, ok
}

// parseDate converts D/M/YY or D/M/YYYY into YYYY-MM-DD. Two-digit years are
// 20YY. Dates that do not exist on the calendar yield "".
func parseDate(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ""
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ""
		}
		nums[i] = n
	}
	d, m, y := nums[0], nums[1], nums[2]
	if y < 100 {
		y += 2000
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func splitCells(raw string) []string {
	cells := strings.Split(raw, "\t")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func nonEmpty(cells []string) []string {
	out := []string{}
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func tail[T any](s []T, from int) []T {
	if from >= len(s) {
		return nil
	}
	return s[from:]
}

func isExerciseHeader(cells []string) bool {
	return len(cells) >= 4 &&
		strings.EqualFold(cells[1], "load") &&
		strings.EqualFold(cells[2], "sets") &&
		strings.EqualFold(cells[3], "reps")
}

func looksLikeLoad(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || loadRe.MatchString(s)
}

// Sets and reps cells always start with a digit ("5", "2-30 min", "8 plates @10").
func looksLikeSetsReps(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

type dataRow struct {
	subtitle string
	load     string
	sets     string
	reps     string
	remarks  []string
}

// decodeDataRow reads the row under a name. Its first cell is a subtitle
// when it does not look like a load, otherwise the load itself.
func decodeDataRow(row []string) dataRow {
	first := cell(row, 0)
	switch {
	case first == "":
		return dataRow{load: cell(row, 1), sets: cell(row, 2), reps: cell(row, 3), remarks: nonEmpty(tail(row, 4))}
	case looksLikeLoad(first):
		return dataRow{load: first, sets: cell(row, 1), reps: cell(row, 2), remarks: nonEmpty(tail(row, 3))}
	default:
		return dataRow{subtitle: first, load: cell(row, 1), sets: cell(row, 2), reps: cell(row, 3), remarks: nonEmpty(tail(row, 4))}
	}
}

type blockDecoder struct {
	row     dataRow
	name    string
	youtube string
}

// extractExtras pulls the first YouTube link out of a trailing line. Anything
// else on the line becomes remarks.
func (b *blockDecoder) extractExtras(cells []string) {
	joined := strings.TrimSpace(strings.Join(cells, " "))
	if joined == "" {
		return
	}
	if b.youtube == "" {
		if m := youtubeRe.FindStringSubmatch(joined); m != nil {
			b.youtube = m[1]
			if rest := strings.TrimSpace(strings.Replace(joined, m[1], "", 1)); rest != "" {
				b.row.remarks = append(b.row.remarks, rest)
			}
			return
		}
	}
	b.row.remarks = append(b.row.remarks, nonEmpty(cells)...)
}

func parseExerciseBlock(lines []string) (models.Exercise, bool) {
	if len(lines) == 0 {
		return models.Exercise{}, false
	}

	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = splitCells(l)
	}
	first := rows[0]
	b := &blockDecoder{name: cell(first, 0)}

	if isExerciseHeader(first) {
		headerRemarks := nonEmpty(tail(first, 4))
		if len(rows) >= 2 {
			b.row = decodeDataRow(rows[1])
			for _, row := range rows[2:] {
				b.extractExtras(row)
			}
		}
		b.row.remarks = append(headerRemarks, b.row.remarks...)
	} else {
		if len(first) >= 4 {
			// Name, load, sets, reps and remarks on one row. A text load such as
			// "go heavy" still counts when the sets cell looks numeric.
			if looksLikeLoad(first[1]) || looksLikeSetsReps(first[2]) {
				b.row = dataRow{load: first[1], sets: first[2], reps: first[3], remarks: nonEmpty(tail(first, 4))}
			}
		}

		next := 1
		if len(rows) >= 2 && b.row.load == "" && b.row.sets == "" && len(rows[1]) >= 2 {
			b.row = decodeDataRow(rows[1])
			next = 2
		}
		for _, row := range tail(rows, next) {
			b.extractExtras(row)
		}
	}

	name, subtitle := b.name, b.row.subtitle
	if b.youtube == "" {
		if m := youtubeRe.FindStringSubmatch(name + " " + subtitle); m != nil {
			b.youtube = m[1]
			name = strings.Replace(name, m[1], "", 1)
			subtitle = strings.Replace(subtitle, m[1], "", 1)
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Exercise{}, false
	}

	load := strings.TrimSpace(b.row.load)
	return models.Exercise{
		ID:         models.NewID(),
		Name:       name,
		Subtitle:   strings.TrimSpace(subtitle),
		Load:       load,
		LoadUnit:   models.InferLoadUnit(load),
		Sets:       models.ParseSets(b.row.sets),
		Reps:       strings.TrimSpace(b.row.reps),
		Remarks:    nonEmpty(b.row.remarks),
		YoutubeURL: b.youtube,
	}, true
}

// ParseQuickAdd reads one exercise per non-blank line:
// Name<TAB>Load<TAB>Sets<TAB>Reps<TAB>remarks...
func ParseQuickAdd(text string) []models.Exercise {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out := []models.Exercise{}
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		cells := splitCells(raw)
		if cells[0] == "" {
			continue
		}
		out = append(out, models.NewExercise(cells[0], cell(cells, 1), cell(cells, 2), cell(cells, 3), nonEmpty(tail(cells, 4))))
	}
	return out
}

// ParseRemarkList splits a comma separated remark field ("pause, belt").
func ParseRemarkList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return nonEmpty(strings.Split(s, ","))
}
