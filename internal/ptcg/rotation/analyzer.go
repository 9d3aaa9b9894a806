// Package rotation buckets deck cards by format legality against the
// regulation-mark rotation and computes the deck's rotation impact.
package rotation

import (
	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

// Severity grades how hard the upcoming rotation hits a deck.
type Severity string

const (
	SeverityNone     Severity = "NONE"
	SeverityLow      Severity = "LOW"
	SeverityModerate Severity = "MODERATE"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// MarkLookup resolves a card's regulation mark. The second return is false
// when the mark is unknown.
type MarkLookup func(c *cards.Card) (cards.Mark, bool)

// DefaultMarkLookup resolves marks from the built-in set table.
func DefaultMarkLookup(c *cards.Card) (cards.Mark, bool) {
	return cards.MarkForSet(c.SetCode)
}

// Bucket is a legality bucket grouped by card type for rendering.
type Bucket struct {
	Pokemon []*cards.Card `json:"pokemon,omitempty"`
	Trainer []*cards.Card `json:"trainer,omitempty"`
	Energy  []*cards.Card `json:"energy,omitempty"`
}

func (b *Bucket) add(c *cards.Card) {
	switch c.Type {
	case cards.TypePokemon:
		b.Pokemon = append(b.Pokemon, c)
	case cards.TypeTrainer:
		b.Trainer = append(b.Trainer, c)
	case cards.TypeEnergy:
		b.Energy = append(b.Energy, c)
	}
}

// Quantity returns the total quantity across the bucket.
func (b *Bucket) Quantity() int {
	total := 0
	for _, group := range [][]*cards.Card{b.Pokemon, b.Trainer, b.Energy} {
		for _, c := range group {
			total += c.Quantity
		}
	}
	return total
}

// Cards returns all bucket entries in Pokémon, Trainer, Energy order.
func (b *Bucket) Cards() []*cards.Card {
	out := make([]*cards.Card, 0, len(b.Pokemon)+len(b.Trainer)+len(b.Energy))
	out = append(out, b.Pokemon...)
	out = append(out, b.Trainer...)
	out = append(out, b.Energy...)
	return out
}

// Report is the legality analysis of a deck. Every deck entry lands in
// exactly one of Illegal, Rotating, Safe or Unknown.
type Report struct {
	DeckName string `json:"deck_name,omitempty"`

	Illegal  Bucket `json:"illegal"`
	Rotating Bucket `json:"rotating"`
	Safe     Bucket `json:"safe"`
	// Unknown holds cards whose regulation mark could not be resolved.
	// They are never guessed legal; callers render them distinctly.
	Unknown Bucket `json:"unknown"`

	TotalCards  int      `json:"total_cards"`
	RotatingQty int      `json:"rotating_qty"`
	Impact      float64  `json:"rotation_impact"` // percentage of total quantity
	Severity    Severity `json:"severity"`
}

// Analyze buckets every card of the deck by legality and computes the
// rotation impact percentage and severity tier. Basic energy is always
// safe regardless of mark.
func Analyze(d *deck.Deck, lookup MarkLookup) *Report {
	if lookup == nil {
		lookup = DefaultMarkLookup
	}

	report := &Report{DeckName: d.Name, TotalCards: d.TotalCards()}

	for _, c := range d.Cards {
		if c.BasicEnergy {
			report.Safe.add(c)
			continue
		}

		mark, ok := lookup(c)
		if !ok {
			report.Unknown.add(c)
			continue
		}
		switch mark {
		case cards.MarkA, cards.MarkB, cards.MarkC, cards.MarkD, cards.MarkE, cards.MarkF:
			report.Illegal.add(c)
		case cards.MarkG:
			report.Rotating.add(c)
			report.RotatingQty += c.Quantity
		case cards.MarkH, cards.MarkI:
			report.Safe.add(c)
		default:
			report.Unknown.add(c)
		}
	}

	if report.TotalCards > 0 {
		report.Impact = float64(report.RotatingQty) / float64(report.TotalCards) * 100
	}
	report.Severity = SeverityFor(report.Impact)

	return report
}

// SeverityFor maps a rotation impact percentage to a severity tier. Band
// edges: exactly 20 is LOW, exactly 21 is MODERATE, 61 and above CRITICAL.
func SeverityFor(impact float64) Severity {
	switch {
	case impact == 0:
		return SeverityNone
	case impact <= 20:
		return SeverityLow
	case impact <= 40:
		return SeverityModerate
	case impact <= 60:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
