package lifts

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed lift_groups.toml
var defaultGroups string

type Group struct {
	Name     string   `toml:"name"`
	Compound bool     `toml:"compound"`
	Aliases  []string `toml:"aliases"`
}

// Canonicalizer maps raw exercise names onto lift groups.
type Canonicalizer struct {
	groups []Group
}

// LoadGroups decodes a lift group table. Declaration order is kept.
func LoadGroups(data string) ([]Group, error) {
	var doc struct {
		Group []Group `toml:"group"`
	}
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("Failed to decode lift groups: %w", err)
	}

	seen := make(map[string]bool, len(doc.Group))
	for i, g := range doc.Group {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("lift group %d has no name", i+1)
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("duplicate lift group %q", g.Name)
		}
		seen[g.Name] = true

		for j, a := range g.Aliases {
			doc.Group[i].Aliases[j] = strings.ToLower(strings.TrimSpace(a))
		}
	}
	return doc.Group, nil
}

func NewCanonicalizer(groups []Group) *Canonicalizer {
	return &Canonicalizer{groups: groups}
}

// Default returns the canonicalizer for the built-in lift groups.
func Default() *Canonicalizer {
	groups, err := LoadGroups(defaultGroups)
	if err != nil {
		panic(err)
	}
	return NewCanonicalizer(groups)
}

// Identify returns the first group whose alias is a substring of the
// lower-cased name. Overlapping aliases resolve by declaration order, so
// "Incline Bench Press" lands on Bench Press.
func (c *Canonicalizer) Identify(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	for _, g := range c.groups {
		for _, alias := range g.Aliases {
			if alias != "" && strings.Contains(lower, alias) {
				return g.Name, true
			}
		}
	}
	return "", false
}

// IsCompound reports whether key names a barbell compound group.
func (c *Canonicalizer) IsCompound(key string) bool {
	for _, g := range c.groups {
		if g.Name == key {
			return g.Compound
		}
	}
	return false
}

func (c *Canonicalizer) Groups() []Group {
	return c.groups
}
