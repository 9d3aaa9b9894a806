// Package subs scores candidate replacements for cards leaving the format
// and returns ranked substitution suggestions.
package subs

import (
	"fmt"
	"sort"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
)

// Score component weights. They sum to 100.
const (
	subtypeWeight  = 40.0
	functionWeight = 40.0
	energyWeight   = 20.0
)

// Options tunes scoring and result shaping.
type Options struct {
	// MinScore filters candidates scoring at or below it. A zero-score
	// candidate is never worth suggesting.
	MinScore float64
	// MaxPerCard caps suggestions per original card.
	MaxPerCard int
}

// DefaultOptions returns the default threshold and cap.
func DefaultOptions() *Options {
	return &Options{MinScore: 20, MaxPerCard: 4}
}

// Substitution pairs a rotating card with a suggested replacement.
type Substitution struct {
	Original   *cards.Card `json:"original"`
	Suggestion *cards.Card `json:"suggestion"`
	Score      float64     `json:"match_score"` // 0-100
	Reasons    []string    `json:"reasons"`
}

// FindSubstitutions scores every same-type candidate for each rotating
// card and returns ranked suggestions, best first, grouped in rotating-card
// order. Cross-type candidates are never suggested. Ordering is
// deterministic: score descending, candidate name ascending on ties.
func FindSubstitutions(rotating, pool []*cards.Card, options *Options) []Substitution {
	if options == nil {
		options = DefaultOptions()
	}

	var results []Substitution
	for _, original := range rotating {
		var forCard []Substitution
		for _, candidate := range pool {
			if candidate.Type != original.Type {
				continue
			}
			if candidate.Name == original.Name {
				continue
			}
			score, reasons := scoreCandidate(original, candidate)
			if score <= options.MinScore {
				continue
			}
			forCard = append(forCard, Substitution{
				Original:   original,
				Suggestion: candidate,
				Score:      score,
				Reasons:    reasons,
			})
		}

		sort.Slice(forCard, func(i, j int) bool {
			if forCard[i].Score != forCard[j].Score {
				return forCard[i].Score > forCard[j].Score
			}
			return forCard[i].Suggestion.Name < forCard[j].Suggestion.Name
		})
		if options.MaxPerCard > 0 && len(forCard) > options.MaxPerCard {
			forCard = forCard[:options.MaxPerCard]
		}
		results = append(results, forCard...)
	}

	return results
}

// scoreCandidate computes the weighted similarity of a candidate to the
// original: subtype match 40, detected-function overlap 40, energy-type
// compatibility 20.
func scoreCandidate(original, candidate *cards.Card) (float64, []string) {
	score := 0.0
	var reasons []string

	if subtypeMatches(original, candidate) {
		score += subtypeWeight
		reasons = append(reasons, subtypeReason(original))
	}

	overlap, matched := functionOverlap(original, candidate)
	if overlap > 0 {
		score += functionWeight * overlap
		if len(matched) > 0 {
			reasons = append(reasons, fmt.Sprintf("covers %d of %d functions (%s)",
				len(matched), len(original.Functions), joinFunctions(matched)))
		} else {
			reasons = append(reasons, "neither card has detected functions")
		}
	}

	if energyCompatible(original, candidate) {
		score += energyWeight
		reasons = append(reasons, "compatible energy type")
	}

	return score, reasons
}

func subtypeMatches(original, candidate *cards.Card) bool {
	switch original.Type {
	case cards.TypeTrainer:
		return original.Subtype == candidate.Subtype
	case cards.TypePokemon:
		return original.Stage == candidate.Stage
	case cards.TypeEnergy:
		return original.BasicEnergy == candidate.BasicEnergy
	}
	return false
}

func subtypeReason(original *cards.Card) string {
	switch original.Type {
	case cards.TypeTrainer:
		return fmt.Sprintf("same trainer subtype (%s)", original.Subtype)
	case cards.TypePokemon:
		return fmt.Sprintf("same stage (%s)", original.Stage)
	default:
		if original.BasicEnergy {
			return "basic energy for basic energy"
		}
		return "special energy for special energy"
	}
}

// functionOverlap returns the fraction of the original's function tags also
// present on the candidate. An original with no tags contributes the full
// component weight only when the candidate has none either: both cards are
// then equally "functionless" and the component carries no signal against
// the match.
func functionOverlap(original, candidate *cards.Card) (float64, []cards.Function) {
	if len(original.Functions) == 0 {
		if len(candidate.Functions) == 0 {
			return 1, nil
		}
		return 0, nil
	}
	var matched []cards.Function
	for _, fn := range original.Functions {
		if candidate.HasFunction(fn) {
			matched = append(matched, fn)
		}
	}
	return float64(len(matched)) / float64(len(original.Functions)), matched
}

func energyCompatible(original, candidate *cards.Card) bool {
	if original.EnergyType == "" || candidate.EnergyType == "" {
		return true
	}
	if original.EnergyType == cards.EnergyColorless || candidate.EnergyType == cards.EnergyColorless {
		return true
	}
	return original.EnergyType == candidate.EnergyType
}

func joinFunctions(functions []cards.Function) string {
	out := ""
	for i, fn := range functions {
		if i > 0 {
			out += ", "
		}
		out += string(fn)
	}
	return out
}
