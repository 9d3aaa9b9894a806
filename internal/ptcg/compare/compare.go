// Package compare computes deck-to-deck comparisons: card overlap, a
// Dice-style similarity percentage and a heuristic matchup assessment.
package compare

import (
	"sort"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

// SharedCard is a card present in both decks, with each deck's quantity.
type SharedCard struct {
	Card *cards.Card `json:"card"`
	QtyA int         `json:"qty_a"`
	QtyB int         `json:"qty_b"`
}

// Comparison is the card-overlap report for a pair of decks.
type Comparison struct {
	DeckA string `json:"deck_a,omitempty"`
	DeckB string `json:"deck_b,omitempty"`

	Shared    []SharedCard  `json:"shared"`
	UniqueToA []*cards.Card `json:"unique_to_a"`
	UniqueToB []*cards.Card `json:"unique_to_b"`

	// Similarity is a symmetric Dice overlap: 100 for identical decks,
	// 0 for disjoint ones.
	Similarity float64 `json:"similarity_percentage"`
}

// Compare computes shared and unique cards plus the similarity percentage.
// Cards are matched by name, set code and collector number; duplicate
// entries for the same printing are merged before comparison. Output
// ordering is deterministic (sorted by card key).
func Compare(a, b *deck.Deck) *Comparison {
	qtyA := a.Quantities()
	qtyB := b.Quantities()

	byKeyA := cardsByKey(a)
	byKeyB := cardsByKey(b)

	result := &Comparison{DeckA: a.Name, DeckB: b.Name}

	overlap := 0
	for _, key := range sortedKeys(qtyA) {
		if qb, ok := qtyB[key]; ok {
			qa := qtyA[key]
			overlap += min(qa, qb)
			result.Shared = append(result.Shared, SharedCard{Card: byKeyA[key], QtyA: qa, QtyB: qb})
		} else {
			result.UniqueToA = append(result.UniqueToA, byKeyA[key])
		}
	}
	for _, key := range sortedKeys(qtyB) {
		if _, ok := qtyA[key]; !ok {
			result.UniqueToB = append(result.UniqueToB, byKeyB[key])
		}
	}

	totalA := a.TotalCards()
	totalB := b.TotalCards()
	if totalA+totalB > 0 {
		result.Similarity = float64(2*overlap) / float64(totalA+totalB) * 100
	}

	return result
}

// cardsByKey returns the first entry for each card identity key.
func cardsByKey(d *deck.Deck) map[string]*cards.Card {
	byKey := make(map[string]*cards.Card, len(d.Cards))
	for _, c := range d.Cards {
		if _, ok := byKey[c.Key()]; !ok {
			byKey[c.Key()] = c
		}
	}
	return byKey
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
