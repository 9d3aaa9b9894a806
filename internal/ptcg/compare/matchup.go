package compare

import (
	"fmt"
	"sort"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

// Verdict is the matchup favor assessment.
type Verdict string

const (
	VerdictAFavored Verdict = "A favored"
	VerdictBFavored Verdict = "B favored"
	VerdictEven     Verdict = "Even"
)

// MatchupAnalysis is a heuristic assessment of how two decks line up. It is
// advisory text, not a probability model.
type MatchupAnalysis struct {
	DeckA string `json:"deck_a,omitempty"`
	DeckB string `json:"deck_b,omitempty"`

	AttackersA []*cards.Card `json:"attackers_a"`
	AttackersB []*cards.Card `json:"attackers_b"`

	AdvantagesA []string `json:"advantages_a"`
	AdvantagesB []string `json:"advantages_b"`

	Verdict Verdict `json:"verdict"`
}

// typeWeaknesses maps an energy type to the types it is weak to. The table
// is directional: Grass lists Fire, which does not imply Fire lists Grass.
var typeWeaknesses = map[cards.EnergyType][]cards.EnergyType{
	cards.EnergyFire:      {cards.EnergyWater},
	cards.EnergyWater:     {cards.EnergyLightning, cards.EnergyGrass},
	cards.EnergyGrass:     {cards.EnergyFire},
	cards.EnergyLightning: {cards.EnergyFighting},
	cards.EnergyFighting:  {cards.EnergyPsychic},
	cards.EnergyPsychic:   {cards.EnergyDarkness},
	cards.EnergyDarkness:  {cards.EnergyFighting},
	cards.EnergyMetal:     {cards.EnergyFire},
	cards.EnergyDragon:    {cards.EnergyFairy},
	cards.EnergyFairy:     {cards.EnergyMetal},
	cards.EnergyColorless: {cards.EnergyFighting},
}

const maxAttackers = 3

// AnalyzeMatchup derives each deck's main attackers, applies the type
// weakness table both ways and weighs speed/consistency signals to produce
// a favor verdict with free-text advantage lists.
func AnalyzeMatchup(a, b *deck.Deck) *MatchupAnalysis {
	analysis := &MatchupAnalysis{
		DeckA:       a.Name,
		DeckB:       b.Name,
		AttackersA:  mainAttackers(a),
		AttackersB:  mainAttackers(b),
		AdvantagesA: []string{},
		AdvantagesB: []string{},
	}

	scoreA, scoreB := 0, 0

	// Type advantage: an attacker scores when the opposing attacker's
	// type lists the attacker's type as a weakness.
	for _, atk := range analysis.AttackersA {
		for _, def := range analysis.AttackersB {
			if isWeakTo(def.EnergyType, atk.EnergyType) {
				scoreA += 2
				analysis.AdvantagesA = append(analysis.AdvantagesA,
					fmt.Sprintf("%s hits %s for weakness (%s vs %s)", atk.Name, def.Name, atk.EnergyType, def.EnergyType))
			}
		}
	}
	for _, atk := range analysis.AttackersB {
		for _, def := range analysis.AttackersA {
			if isWeakTo(def.EnergyType, atk.EnergyType) {
				scoreB += 2
				analysis.AdvantagesB = append(analysis.AdvantagesB,
					fmt.Sprintf("%s hits %s for weakness (%s vs %s)", atk.Name, def.Name, atk.EnergyType, def.EnergyType))
			}
		}
	}

	// Consistency signal: draw-function trainer density.
	drawA, drawB := functionQty(a, cards.FuncDraw), functionQty(b, cards.FuncDraw)
	if drawA > drawB {
		scoreA++
		analysis.AdvantagesA = append(analysis.AdvantagesA,
			fmt.Sprintf("more draw support (%d vs %d)", drawA, drawB))
	} else if drawB > drawA {
		scoreB++
		analysis.AdvantagesB = append(analysis.AdvantagesB,
			fmt.Sprintf("more draw support (%d vs %d)", drawB, drawA))
	}

	// Speed signal: search/acceleration density gets a deck set up faster.
	speedA := functionQty(a, cards.FuncSearch) + functionQty(a, cards.FuncEnergyAccel)
	speedB := functionQty(b, cards.FuncSearch) + functionQty(b, cards.FuncEnergyAccel)
	if speedA > speedB {
		scoreA++
		analysis.AdvantagesA = append(analysis.AdvantagesA,
			fmt.Sprintf("faster setup (%d search/acceleration cards vs %d)", speedA, speedB))
	} else if speedB > speedA {
		scoreB++
		analysis.AdvantagesB = append(analysis.AdvantagesB,
			fmt.Sprintf("faster setup (%d search/acceleration cards vs %d)", speedB, speedA))
	}

	switch {
	case scoreA > scoreB:
		analysis.Verdict = VerdictAFavored
	case scoreB > scoreA:
		analysis.Verdict = VerdictBFavored
	default:
		analysis.Verdict = VerdictEven
	}

	return analysis
}

// mainAttackers returns the deck's headline Pokémon: ex/V/VSTAR/VMAX/Mega
// variants ranked by printed HP, up to three. Ties break by name for
// deterministic output.
func mainAttackers(d *deck.Deck) []*cards.Card {
	var attackers []*cards.Card
	for _, c := range d.Cards {
		if c.Type != cards.TypePokemon {
			continue
		}
		switch c.Stage {
		case cards.StageEX, cards.StageV, cards.StageVSTAR, cards.StageVMAX, cards.StageMega:
			attackers = append(attackers, c)
		}
	}
	sort.Slice(attackers, func(i, j int) bool {
		if attackers[i].HP != attackers[j].HP {
			return attackers[i].HP > attackers[j].HP
		}
		return attackers[i].Name < attackers[j].Name
	})
	if len(attackers) > maxAttackers {
		attackers = attackers[:maxAttackers]
	}
	return attackers
}

func isWeakTo(defender, attacker cards.EnergyType) bool {
	if defender == "" || attacker == "" {
		return false
	}
	for _, weak := range typeWeaknesses[defender] {
		if weak == attacker {
			return true
		}
	}
	return false
}

func functionQty(d *deck.Deck, fn cards.Function) int {
	total := 0
	for _, c := range d.Cards {
		if c.HasFunction(fn) {
			total += c.Quantity
		}
	}
	return total
}
