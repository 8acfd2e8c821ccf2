package lifts

import (
	"sort"
	"strings"

	"github.com/misterclayt0n/barbell/internal/models"
	"github.com/misterclayt0n/barbell/internal/utils"
)

const (
	rankWindowWeeks = 6
	compoundBias    = 1.5
)

type Stats struct {
	Latest      Entry
	First       Entry
	Sessions    int
	TotalVolume float64
	Progression float64
	BestWeight  float64
	Best1RM     float64
}

// ComputeStats summarises a series. It reports false for an empty series.
func ComputeStats(entries []Entry) (Stats, bool) {
	if len(entries) == 0 {
		return Stats{}, false
	}

	st := Stats{
		First:    entries[0],
		Latest:   entries[len(entries)-1],
		Sessions: len(entries),
	}
	for _, e := range entries {
		st.TotalVolume += e.Volume
		if e.Weight > st.BestWeight {
			st.BestWeight = e.Weight
		}
		if orm := utils.CalculateEpley1RM(e.Weight, e.Reps); orm > st.Best1RM {
			st.Best1RM = orm
		}
	}
	st.Progression = st.Latest.Weight - st.First.Weight
	return st, true
}

// History returns up to limit entries, most recent first. A non-positive
// limit returns them all.
func History(entries []Entry, limit int) []Entry {
	n := len(entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out
}

// Rank orders the series keys by how often they appear in the last six
// weeks. Compound lifts count one and a half times; ties sort by name.
func Rank(program *models.WorkoutProgram, series *Series, c *Canonicalizer) []string {
	keys := series.Keys()
	freq := make(map[string]float64)

	if program != nil {
		weeks := program.Weeks
		if len(weeks) > rankWindowWeeks {
			weeks = weeks[len(weeks)-rankWindowWeeks:]
		}
		for _, week := range weeks {
			for _, day := range week.Days {
				for _, ex := range day.Exercises {
					key := strings.TrimSpace(ex.Name)
					if canonical, ok := c.Identify(ex.Name); ok && series.Has(canonical) {
						key = canonical
					}
					if series.Has(key) {
						freq[key]++
					}
				}
			}
		}
	}

	for k := range freq {
		if c.IsCompound(k) {
			freq[k] *= compoundBias
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Filter keeps the keys containing query, case-insensitively.
func Filter(keys []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return keys
	}
	var out []string
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), query) {
			out = append(out, k)
		}
	}
	return out
}
