package meta

import (
	"fmt"
	"sort"
)

// MetaScore computes an archetype's weighted expected score against the
// catalogued field: the average of its recorded win rates against every
// other archetype, weighted by the opponent's meta share. Archetypes with
// no recorded matchup contribute zero weight; they are excluded from both
// numerator and denominator rather than imputed as 50%. ErrNoData is
// returned when no matchup at all is recorded.
func (c *Catalogue) MetaScore(id string) (float64, error) {
	if _, err := c.Archetype(id); err != nil {
		return 0, err
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, oppID := range c.order {
		if oppID == id {
			continue
		}
		m, err := c.Matchup(id, oppID)
		if err != nil {
			continue
		}
		share := c.archetypes[oppID].MetaShare
		weightedSum += m.WinRateA * share
		totalWeight += share
	}

	if totalWeight == 0 {
		return 0, fmt.Errorf("%w: no matchups recorded for %s", ErrNoData, id)
	}
	return weightedSum / totalWeight, nil
}

// BestAgainst returns the catalogued archetype with the highest unweighted
// average win rate against the given opponent pool, using recorded
// matchups only. Candidates with zero overlapping matchups are excluded
// from the ranking. Ties break by higher meta share, then by id for
// determinism. ErrNoData is returned when no candidate overlaps the pool.
func (c *Catalogue) BestAgainst(opponents []string) (string, error) {
	for _, id := range opponents {
		if _, err := c.Archetype(id); err != nil {
			return "", err
		}
	}

	type ranked struct {
		id      string
		average float64
		share   float64
	}
	var candidates []ranked

	for _, id := range c.order {
		sum := 0.0
		recorded := 0
		for _, oppID := range opponents {
			if oppID == id {
				continue
			}
			m, err := c.Matchup(id, oppID)
			if err != nil {
				continue
			}
			sum += m.WinRateA
			recorded++
		}
		if recorded == 0 {
			continue
		}
		candidates = append(candidates, ranked{
			id:      id,
			average: sum / float64(recorded),
			share:   c.archetypes[id].MetaShare,
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no candidate has recorded matchups against the pool", ErrNoData)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].average != candidates[j].average {
			return candidates[i].average > candidates[j].average
		}
		if candidates[i].share != candidates[j].share {
			return candidates[i].share > candidates[j].share
		}
		return candidates[i].id < candidates[j].id
	})

	return candidates[0].id, nil
}

// CounterReport pairs an archetype with its average win rate against a
// pool, for rendering ranked counter suggestions.
type CounterReport struct {
	ArchetypeID string  `json:"archetype_id"`
	Average     float64 `json:"average_win_rate"`
	MetaShare   float64 `json:"meta_share"`
}

// BestCounters ranks every catalogued archetype by unweighted average win
// rate against the opponent pool, highest first. Candidates with no
// recorded overlap are omitted.
func (c *Catalogue) BestCounters(opponents []string, limit int) ([]CounterReport, error) {
	for _, id := range opponents {
		if _, err := c.Archetype(id); err != nil {
			return nil, err
		}
	}

	var reports []CounterReport
	for _, id := range c.order {
		sum := 0.0
		recorded := 0
		for _, oppID := range opponents {
			if oppID == id {
				continue
			}
			if m, err := c.Matchup(id, oppID); err == nil {
				sum += m.WinRateA
				recorded++
			}
		}
		if recorded == 0 {
			continue
		}
		reports = append(reports, CounterReport{
			ArchetypeID: id,
			Average:     sum / float64(recorded),
			MetaShare:   c.archetypes[id].MetaShare,
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Average != reports[j].Average {
			return reports[i].Average > reports[j].Average
		}
		if reports[i].MetaShare != reports[j].MetaShare {
			return reports[i].MetaShare > reports[j].MetaShare
		}
		return reports[i].ArchetypeID < reports[j].ArchetypeID
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
