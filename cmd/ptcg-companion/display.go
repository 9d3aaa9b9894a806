package main

import (
	"fmt"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/compare"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
	"github.com/strumendo/ptcg-companion/internal/ptcg/meta"
	"github.com/strumendo/ptcg-companion/internal/ptcg/rotation"
	"github.com/strumendo/ptcg-companion/internal/ptcg/subs"
)

// output bundles every report produced in a single run, for JSON encoding.
type output struct {
	Deck          *deck.Deck               `json:"deck"`
	Rotation      *rotation.Report         `json:"rotation"`
	Comparison    *compare.Comparison      `json:"comparison,omitempty"`
	Matchup       *compare.MatchupAnalysis `json:"matchup,omitempty"`
	Identity      []archetypeMatch         `json:"identity,omitempty"`
	Substitutions []subs.Substitution      `json:"substitutions,omitempty"`
}

// archetypeMatch pairs a catalogued archetype with its similarity to the
// analyzed deck.
type archetypeMatch struct {
	ArchetypeID string  `json:"archetype_id"`
	Name        string  `json:"name"`
	Similarity  float64 `json:"similarity"`
}

func (app *application) display(out *output) {
	displayDeckSummary(out.Deck)
	displayRotationReport(out.Rotation)

	if out.Comparison != nil {
		displayComparison(out.Comparison)
	}
	if out.Matchup != nil {
		displayMatchup(out.Matchup)
	}
	if out.Identity != nil {
		displayIdentity(out.Identity)
	}
	if out.Substitutions != nil {
		displaySubstitutions(out.Substitutions)
	}
}

func displayDeckSummary(d *deck.Deck) {
	fmt.Printf("\nDeck: %s\n", d.Name)
	fmt.Println("==================")
	fmt.Printf("Total cards: %d (Pokemon %d / Trainer %d / Energy %d)\n",
		d.TotalCards(), d.PokemonCount(), d.TrainerCount(), d.EnergyCount())
	if len(d.Warnings) > 0 {
		fmt.Printf("Skipped lines: %d\n", len(d.Warnings))
	}
}

func displayRotationReport(report *rotation.Report) {
	fmt.Println("\nRotation Report")
	fmt.Println("===============")
	fmt.Printf("Impact: %.1f%% of the deck rotates (severity %s)\n", report.Impact, report.Severity)

	displayBucket("Rotating", &report.Rotating)
	displayBucket("Already illegal", &report.Illegal)
	displayBucket("Unknown legality", &report.Unknown)
	displayBucket("Safe", &report.Safe)
}

func displayBucket(title string, bucket *rotation.Bucket) {
	qty := bucket.Quantity()
	if qty == 0 {
		return
	}
	fmt.Printf("\n%s (%d cards):\n", title, qty)
	groups := []struct {
		label string
		list  []*cards.Card
	}{
		{"Pokemon", bucket.Pokemon},
		{"Trainer", bucket.Trainer},
		{"Energy", bucket.Energy},
	}
	for _, group := range groups {
		for _, c := range group.list {
			fmt.Printf("  %-8s %d %s %s %s\n", group.label, c.Quantity, c.Name, c.SetCode, c.SetNumber)
		}
	}
}

func displayComparison(comparison *compare.Comparison) {
	fmt.Println("\nDeck Comparison")
	fmt.Println("===============")
	fmt.Printf("%s vs %s\n", comparison.DeckA, comparison.DeckB)
	fmt.Printf("Similarity: %.1f%%\n", comparison.Similarity)
	fmt.Printf("Shared printings: %d | only in %s: %d | only in %s: %d\n",
		len(comparison.Shared), comparison.DeckA, len(comparison.UniqueToA),
		comparison.DeckB, len(comparison.UniqueToB))

	for _, shared := range comparison.Shared {
		fmt.Printf("  both: %s (%dx vs %dx)\n", shared.Card.Name, shared.QtyA, shared.QtyB)
	}
}

func displayMatchup(analysis *compare.MatchupAnalysis) {
	fmt.Println("\nMatchup Assessment")
	fmt.Println("==================")
	fmt.Printf("Verdict: %s\n", analysis.Verdict)

	if len(analysis.AttackersA) > 0 {
		fmt.Printf("%s attackers:", analysis.DeckA)
		for _, atk := range analysis.AttackersA {
			fmt.Printf(" %s (%d HP, %s)", atk.Name, atk.HP, atk.EnergyType)
		}
		fmt.Println()
	}
	if len(analysis.AttackersB) > 0 {
		fmt.Printf("%s attackers:", analysis.DeckB)
		for _, atk := range analysis.AttackersB {
			fmt.Printf(" %s (%d HP, %s)", atk.Name, atk.HP, atk.EnergyType)
		}
		fmt.Println()
	}

	for _, adv := range analysis.AdvantagesA {
		fmt.Printf("  + %s: %s\n", analysis.DeckA, adv)
	}
	for _, adv := range analysis.AdvantagesB {
		fmt.Printf("  + %s: %s\n", analysis.DeckB, adv)
	}
}

func displayIdentity(matches []archetypeMatch) {
	fmt.Println("\nArchetype Identification")
	fmt.Println("========================")
	for i, match := range matches {
		if i >= 3 {
			break
		}
		fmt.Printf("  %d. %s (%.1f%% similar)\n", i+1, match.Name, match.Similarity)
	}
}

func displayMetaScore(catalogue *meta.Catalogue, id string, score float64) {
	name := id
	if archetype, err := catalogue.Archetype(id); err == nil {
		name = archetype.Name
	}
	fmt.Printf("\nWeighted meta score for %s: %.1f\n", name, score)
}

func displayCounters(catalogue *meta.Catalogue, opponents []string, counters []meta.CounterReport) {
	fmt.Println("\nBest Counters")
	fmt.Println("=============")
	fmt.Printf("Against: %v\n", opponents)
	for i, counter := range counters {
		name := counter.ArchetypeID
		if archetype, err := catalogue.Archetype(counter.ArchetypeID); err == nil {
			name = archetype.Name
		}
		fmt.Printf("  %d. %s: %.1f%% average win rate (%.1f%% of the meta)\n",
			i+1, name, counter.Average, counter.MetaShare)
	}
}

func displaySubstitutions(substitutions []subs.Substitution) {
	fmt.Println("\nSubstitution Suggestions")
	fmt.Println("========================")
	if len(substitutions) == 0 {
		fmt.Println("No candidates scored above the suggestion threshold.")
		return
	}

	lastOriginal := ""
	for _, sub := range substitutions {
		if sub.Original.Name != lastOriginal {
			fmt.Printf("\nFor %s:\n", sub.Original.Name)
			lastOriginal = sub.Original.Name
		}
		fmt.Printf("  %.0f  %s %s %s\n", sub.Score, sub.Suggestion.Name, sub.Suggestion.SetCode, sub.Suggestion.SetNumber)
		for _, reason := range sub.Reasons {
			fmt.Printf("        - %s\n", reason)
		}
	}
}
