package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type LoadUnit string

const (
	UnitKg     LoadUnit = "kg"
	UnitLb     LoadUnit = "lb"
	UnitPlates LoadUnit = "plates"
)

var platesSuffixRe = regexp.MustCompile(`(?i)p\s*$`)

// InferLoadUnit guesses the unit of a free-form load string ("30lb", "14p", "60").
func InferLoadUnit(load string) LoadUnit {
	lower := strings.ToLower(load)
	if strings.Contains(lower, "lb") {
		return UnitLb
	}
	if platesSuffixRe.MatchString(load) {
		return UnitPlates
	}
	return UnitKg
}

type Exercise struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Load       string   `json:"load"`
	LoadUnit   LoadUnit `json:"loadUnit"`
	Sets       Sets     `json:"sets"`
	Reps       string   `json:"reps"`
	Remarks    []string `json:"remarks"`
	YoutubeURL string   `json:"youtubeUrl,omitempty"`
	Completed  bool     `json:"completed"`
}

type SetsKind int

const (
	SetsEmpty SetsKind = iota
	SetsNumeric
	SetsRaw
)

// Sets is the sets column of an exercise. Spreadsheet cells hold either a
// clean integer ("5"), free text ("2-3", "AMRAP") or nothing at all.
type Sets struct {
	Kind SetsKind
	N    int
	Raw  string
}

func NumericSets(n int) Sets { return Sets{Kind: SetsNumeric, N: n} }

// ParseSets coerces a cell into Sets: integer when it parses cleanly,
// otherwise the raw text, otherwise empty.
func ParseSets(cell string) Sets {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Sets{}
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return NumericSets(n)
	}
	return Sets{Kind: SetsRaw, Raw: cell}
}

// Int returns the numeric value, or the leading digits of a raw value, or 0.
func (s Sets) Int() int {
	switch s.Kind {
	case SetsNumeric:
		return s.N
	case SetsRaw:
		return LeadingInt(s.Raw)
	}
	return 0
}

func (s Sets) String() string {
	switch s.Kind {
	case SetsNumeric:
		return strconv.Itoa(s.N)
	case SetsRaw:
		return s.Raw
	}
	return ""
}

func (s Sets) IsEmpty() bool { return s.Kind == SetsEmpty }

func (s Sets) MarshalJSON() ([]byte, error) {
	if s.Kind == SetsNumeric {
		return []byte(strconv.Itoa(s.N)), nil
	}
	return json.Marshal(s.String())
}

func (s *Sets) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = Sets{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*s = Sets{}
			return nil
		}
		*s = Sets{Kind: SetsRaw, Raw: raw}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	*s = NumericSets(int(f))
	return nil
}

// MarshalText is used by the TOML undo-state file.
func (s Sets) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sets) UnmarshalText(text []byte) error {
	*s = ParseSets(string(text))
	return nil
}

var leadingIntRe = regexp.MustCompile(`^\s*(\d+)`)

// LeadingInt parses the leading digits of s ("8 plates @10" -> 8), 0 when none.
func LeadingInt(s string) int {
	m := leadingIntRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// NewExercise builds an exercise from form-like fields, inferring the load unit.
func NewExercise(name, load, sets, reps string, remarks []string) Exercise {
	load = strings.TrimSpace(load)
	if remarks == nil {
		remarks = []string{}
	}
	return Exercise{
		ID:       NewID(),
		Name:     strings.TrimSpace(name),
		Load:     load,
		LoadUnit: InferLoadUnit(load),
		Sets:     ParseSets(sets),
		Reps:     strings.TrimSpace(reps),
		Remarks:  remarks,
	}
}
