// Package meta holds the curated meta-archetype catalogue and the matchup
// engine over it. The catalogue is loaded once at startup and is read-only
// afterwards, so concurrent analysis calls need no coordination.
package meta

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

// ErrNoData is returned when the catalogue has no record to answer a
// query. Callers must render this distinctly; it is never imputed as 50%.
var ErrNoData = errors.New("meta: no recorded data")

// ErrUnknownArchetype is returned for archetype ids not in the catalogue.
var ErrUnknownArchetype = errors.New("meta: unknown archetype")

// Archetype is a catalogued meta deck.
type Archetype struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	LocalizedNames map[language.Tag]string `json:"-"`

	Tier      int     `json:"tier"`       // 1-3, ascending rarity/strength
	MetaShare float64 `json:"meta_share"` // percentage of the field

	Deck *deck.Deck `json:"deck"`

	Strategy   string   `json:"strategy,omitempty"`
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// Matchup is the directional win-rate record for an ordered archetype
// pair. WinRateA is A's win rate against B, 0-100. The source data is
// community-sourced and may be asymmetric; the engine preserves that
// asymmetry instead of correcting it.
type Matchup struct {
	ArchetypeA string  `json:"archetype_a"`
	ArchetypeB string  `json:"archetype_b"`
	WinRateA   float64 `json:"win_rate_a"`
	Notes      string  `json:"notes,omitempty"`

	// Derivable documents that the reverse direction may be derived as
	// 100 - WinRateA. Without it a missing reverse record is reported as
	// no data, never guessed.
	Derivable bool `json:"derivable,omitempty"`
}

// Catalogue is the read-only archetype and matchup reference data.
type Catalogue struct {
	archetypes map[string]*Archetype
	order      []string // insertion order for deterministic iteration
	matchups   map[string]map[string]*Matchup
}

// NewCatalogue builds a catalogue from archetypes and directional matchup
// records. Matchups referencing unknown archetypes are rejected.
func NewCatalogue(archetypes []*Archetype, matchups []*Matchup) (*Catalogue, error) {
	c := &Catalogue{
		archetypes: make(map[string]*Archetype, len(archetypes)),
		matchups:   make(map[string]map[string]*Matchup),
	}
	for _, a := range archetypes {
		if a.ID == "" {
			return nil, fmt.Errorf("archetype %q has no id", a.Name)
		}
		if _, dup := c.archetypes[a.ID]; dup {
			return nil, fmt.Errorf("duplicate archetype id %q", a.ID)
		}
		c.archetypes[a.ID] = a
		c.order = append(c.order, a.ID)
	}
	for _, m := range matchups {
		if _, ok := c.archetypes[m.ArchetypeA]; !ok {
			return nil, fmt.Errorf("matchup references unknown archetype %q", m.ArchetypeA)
		}
		if _, ok := c.archetypes[m.ArchetypeB]; !ok {
			return nil, fmt.Errorf("matchup references unknown archetype %q", m.ArchetypeB)
		}
		if c.matchups[m.ArchetypeA] == nil {
			c.matchups[m.ArchetypeA] = make(map[string]*Matchup)
		}
		c.matchups[m.ArchetypeA][m.ArchetypeB] = m
	}
	return c, nil
}

// Archetype returns the archetype with the given id.
func (c *Catalogue) Archetype(id string) (*Archetype, error) {
	a, ok := c.archetypes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArchetype, id)
	}
	return a, nil
}

// Archetypes returns all archetypes in catalogue order.
func (c *Catalogue) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.archetypes[id])
	}
	return out
}

// FindArchetypeByName matches an archetype by its display name in any
// configured locale. The locale parameter selects the preferred name field
// first; matching is case-insensitive.
func (c *Catalogue) FindArchetypeByName(name string, locale language.Tag) (*Archetype, error) {
	for _, id := range c.order {
		a := c.archetypes[id]
		if nameEqualFold(a.LocalizedNames[locale], name) || nameEqualFold(a.Name, name) {
			return a, nil
		}
		for _, localized := range a.LocalizedNames {
			if nameEqualFold(localized, name) {
				return a, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownArchetype, name)
}

// Matchup returns the win-rate record from a's perspective against b.
// When only the reverse direction is stored, the result is derived as
// 100 - win rate only if that record is documented as derivable;
// otherwise ErrNoData is returned.
func (c *Catalogue) Matchup(a, b string) (*Matchup, error) {
	if _, err := c.Archetype(a); err != nil {
		return nil, err
	}
	if _, err := c.Archetype(b); err != nil {
		return nil, err
	}

	if m, ok := c.matchups[a][b]; ok {
		return m, nil
	}
	if reverse, ok := c.matchups[b][a]; ok && reverse.Derivable {
		return &Matchup{
			ArchetypeA: a,
			ArchetypeB: b,
			WinRateA:   100 - reverse.WinRateA,
			Notes:      reverse.Notes,
			Derivable:  true,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s vs %s", ErrNoData, a, b)
}

func nameEqualFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
