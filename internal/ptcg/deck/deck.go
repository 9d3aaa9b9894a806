// Package deck provides the Deck model, the PTCGO decklist parser and the
// text exporter.
package deck

import "github.com/strumendo/ptcg-companion/internal/ptcg/cards"

// Deck is an ordered list of card entries plus a display name. Entries keep
// input order; duplicate lines for the same printing are kept as separate
// entries, so summary counts sum quantities across entries at read time.
type Deck struct {
	Name     string        `json:"name"`
	Cards    []*cards.Card `json:"cards"`
	Warnings []string      `json:"warnings,omitempty"`
}

// TotalCards returns the total quantity across all entries.
func (d *Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Quantity
	}
	return total
}

// CountByType returns the total quantity of cards of the given type.
func (d *Deck) CountByType(t cards.CardType) int {
	total := 0
	for _, c := range d.Cards {
		if c.Type == t {
			total += c.Quantity
		}
	}
	return total
}

// PokemonCount returns the total quantity of Pokémon cards.
func (d *Deck) PokemonCount() int { return d.CountByType(cards.TypePokemon) }

// TrainerCount returns the total quantity of trainer cards.
func (d *Deck) TrainerCount() int { return d.CountByType(cards.TypeTrainer) }

// EnergyCount returns the total quantity of energy cards.
func (d *Deck) EnergyCount() int { return d.CountByType(cards.TypeEnergy) }

// Quantities aggregates quantities per card identity key, merging duplicate
// entries for the same printing.
func (d *Deck) Quantities() map[string]int {
	quantities := make(map[string]int, len(d.Cards))
	for _, c := range d.Cards {
		quantities[c.Key()] += c.Quantity
	}
	return quantities
}
