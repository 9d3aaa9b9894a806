// Package cards provides the card model and line classifier for Pokémon TCG
// decklists: card types, trainer subtypes, Pokémon stages, energy types,
// set-code normalization, regulation marks and detected function tags.
package cards

import (
	"strings"

	"golang.org/x/text/language"
)

// CardType is the top-level classification of a card.
type CardType string

const (
	TypePokemon CardType = "pokemon"
	TypeTrainer CardType = "trainer"
	TypeEnergy  CardType = "energy"
)

// TrainerSubtype is the trainer category. Empty for non-trainers.
type TrainerSubtype string

const (
	SubtypeSupporter TrainerSubtype = "supporter"
	SubtypeItem      TrainerSubtype = "item"
	SubtypeStadium   TrainerSubtype = "stadium"
	SubtypeTool      TrainerSubtype = "tool"
)

// Stage is the Pokémon stage or variant tag extracted from the card name.
// Informational only; legality does not depend on it.
type Stage string

const (
	StageBasic  Stage = "basic"
	StageStage1 Stage = "stage1"
	StageStage2 Stage = "stage2"
	StageEX     Stage = "ex"
	StageV      Stage = "v"
	StageVMAX   Stage = "vmax"
	StageVSTAR  Stage = "vstar"
	StageMega   Stage = "mega"
	StageTera   Stage = "tera"
)

// EnergyType is a Pokémon energy color.
type EnergyType string

const (
	EnergyFire      EnergyType = "Fire"
	EnergyWater     EnergyType = "Water"
	EnergyGrass     EnergyType = "Grass"
	EnergyLightning EnergyType = "Lightning"
	EnergyPsychic   EnergyType = "Psychic"
	EnergyFighting  EnergyType = "Fighting"
	EnergyDarkness  EnergyType = "Darkness"
	EnergyMetal     EnergyType = "Metal"
	EnergyDragon    EnergyType = "Dragon"
	EnergyColorless EnergyType = "Colorless"
	EnergyFairy     EnergyType = "Fairy"
)

// Function is a detected gameplay function tag.
type Function string

const (
	FuncDraw        Function = "draw"
	FuncSearch      Function = "search"
	FuncRecovery    Function = "recovery"
	FuncSwitching   Function = "switching"
	FuncEnergyAccel Function = "energy_accel"
	FuncDisruption  Function = "disruption"
	FuncSetup       Function = "setup"
	FuncProtection  Function = "protection"
	FuncDamage      Function = "damage"
	FuncHealing     Function = "healing"
)

// Mark is a regulation mark letter (A-I). MarkUnknown means the set is not
// in the lookup table; callers must treat it as "unknown", never as legal.
type Mark string

const (
	MarkA Mark = "A"
	MarkB Mark = "B"
	MarkC Mark = "C"
	MarkD Mark = "D"
	MarkE Mark = "E"
	MarkF Mark = "F"
	MarkG Mark = "G"
	MarkH Mark = "H"
	MarkI Mark = "I"

	MarkUnknown Mark = ""
)

// Card is a single printed card reference within a deck.
type Card struct {
	// Name is the primary (English) display name and the match key for
	// lookups. LocalizedNames holds additional display names per locale.
	Name           string                   `json:"name"`
	LocalizedNames map[language.Tag]string  `json:"-"`

	Type       CardType       `json:"card_type"`
	Subtype    TrainerSubtype `json:"subtype,omitempty"`
	Stage      Stage          `json:"stage,omitempty"`
	EnergyType EnergyType     `json:"energy_type,omitempty"`
	HP         int            `json:"hp,omitempty"`

	SetCode   string `json:"set_code"`
	SetNumber string `json:"set_number"`

	Quantity  int        `json:"quantity"`
	Functions []Function `json:"functions,omitempty"`

	// BasicEnergy marks quantity-unlimited basic energy, which is always
	// legal regardless of regulation mark.
	BasicEnergy bool `json:"basic_energy,omitempty"`
}

// Key returns the identity key used for deck comparisons: name, set code
// and collector number.
func (c *Card) Key() string {
	return c.Name + "|" + c.SetCode + "|" + c.SetNumber
}

// NameForLocale returns the card name for the given locale, falling back to
// the primary name when no localized name is configured.
func (c *Card) NameForLocale(locale language.Tag) string {
	if name, ok := c.LocalizedNames[locale]; ok {
		return name
	}
	return c.Name
}

// MatchesName reports whether name matches the card's primary name or any
// configured localized name. Matching is case-insensitive.
func (c *Card) MatchesName(name string) bool {
	if strings.EqualFold(c.Name, name) {
		return true
	}
	for _, localized := range c.LocalizedNames {
		if strings.EqualFold(localized, name) {
			return true
		}
	}
	return false
}

// HasFunction reports whether the card carries the given function tag.
func (c *Card) HasFunction(fn Function) bool {
	for _, f := range c.Functions {
		if f == fn {
			return true
		}
	}
	return false
}
