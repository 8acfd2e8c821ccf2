package lifts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/misterclayt0n/barbell/internal/models"
)

var leadingNumberRe = regexp.MustCompile(`^(\d+\.?\d*)`)

// Entry is one dated observation of a lift. The indices point back at the
// exercise it came from.
type Entry struct {
	Date      string
	DayName   string
	Weight    float64
	Sets      int
	Reps      int
	Volume    float64
	Name      string
	WeekLabel string

	WeekIndex     int
	DayIndex      int
	ExerciseIndex int
	ExerciseID    string
}

// Series maps a lift key (canonical group or raw exercise name) to its
// entries, remembering the order keys were first seen.
type Series struct {
	keys    []string
	entries map[string][]Entry
}

func newSeries() *Series {
	return &Series{entries: make(map[string][]Entry)}
}

func (s *Series) add(key string, e Entry) {
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = append(s.entries[key], e)
}

func (s *Series) merge(other *Series) {
	for _, k := range other.keys {
		for _, e := range other.entries[k] {
			s.add(k, e)
		}
	}
}

func (s *Series) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Series) Entries(key string) []Entry {
	return s.entries[key]
}

func (s *Series) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

func (s *Series) Len() int {
	return len(s.keys)
}

// ParseLoadValue reads the leading number of a load ("60kg" -> 60). It
// reports false for "done", empty and non-numeric loads.
func ParseLoadValue(load string) (float64, bool) {
	load = strings.ToLower(strings.TrimSpace(load))
	if load == "" || load == "done" {
		return 0, false
	}
	m := leadingNumberRe.FindStringSubmatch(load)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type keyFunc func(name string) (string, bool)

// collect walks the program in week/day/exercise order and records every
// exercise with a positive load under the key returned by keyOf.
func collect(program *models.WorkoutProgram, keyOf keyFunc) *Series {
	s := newSeries()
	for wi, week := range program.Weeks {
		for di, day := range week.Days {
			for ei, ex := range day.Exercises {
				key, ok := keyOf(ex.Name)
				if !ok {
					continue
				}
				weight, ok := ParseLoadValue(ex.Load)
				if !ok || weight <= 0 {
					continue
				}

				sets := ex.Sets.Int()
				reps := models.LeadingInt(ex.Reps)
				s.add(key, Entry{
					Date:          day.Date,
					DayName:       day.DayName,
					Weight:        weight,
					Sets:          sets,
					Reps:          reps,
					Volume:        weight * float64(sets) * float64(reps),
					Name:          ex.Name,
					WeekLabel:     week.Label,
					WeekIndex:     wi,
					DayIndex:      di,
					ExerciseIndex: ei,
					ExerciseID:    ex.ID,
				})
			}
		}
	}
	return s
}

// Build aggregates the program into per-lift series. Recognised lifts are
// keyed by their group, everything else by the exact trimmed name.
func Build(program *models.WorkoutProgram, c *Canonicalizer) *Series {
	if program == nil {
		return newSeries()
	}

	canonical := collect(program, c.Identify)
	raw := collect(program, func(name string) (string, bool) {
		name = strings.TrimSpace(name)
		if name == "" {
			return "", false
		}
		if _, ok := c.Identify(name); ok {
			return "", false
		}
		return name, true
	})

	canonical.merge(raw)
	return canonical
}
