package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

func TestAnalyze_BucketsByMark(t *testing.T) {
	p := deck.NewParser()
	d := p.ParseNamed("mixed", `
4 Charizard ex OBF 125
4 Charmander MEW 4
4 Fezandipiti ex SFA 38
4 Quick Ball SSH 179
2 Mystery Card ZZZ 1
6 Basic Fire Energy SVE 2
`)
	require.Equal(t, 24, d.TotalCards())

	report := Analyze(d, nil)

	// OBF and MEW carry mark G, SFA is H, SSH is D, ZZZ is unknown
	// and basic energy is always safe.
	assert.Equal(t, 8, report.Rotating.Quantity())
	assert.Equal(t, 4, report.Illegal.Quantity())
	assert.Equal(t, 10, report.Safe.Quantity())
	assert.Equal(t, 2, report.Unknown.Quantity())

	total := report.Rotating.Quantity() + report.Illegal.Quantity() +
		report.Safe.Quantity() + report.Unknown.Quantity()
	assert.Equal(t, report.TotalCards, total)

	assert.Equal(t, 8, report.RotatingQty)
	assert.InDelta(t, 33.33, report.Impact, 0.01)
	assert.Equal(t, SeverityModerate, report.Severity)
}

func TestAnalyze_CharizardScenario(t *testing.T) {
	p := deck.NewParser()
	d := p.Parse(`
4 Charizard ex OBF 125
4 Charmander MEW 4
6 Basic Fire Energy SVE 2
`)

	report := Analyze(d, nil)

	assert.Equal(t, 14, report.TotalCards)
	assert.Equal(t, 8, report.RotatingQty)
	assert.InDelta(t, 57.14, report.Impact, 0.01)
	assert.Equal(t, SeverityHigh, report.Severity)
}

func TestAnalyze_BasicEnergyAlwaysSafe(t *testing.T) {
	p := deck.NewParser()
	// SVE is not in the set table, but basic energy never lands in the
	// unknown bucket.
	d := p.Parse("6 Basic Fire Energy SVE 2\n4 Basic Water Energy\n")

	report := Analyze(d, nil)

	assert.Equal(t, 10, report.Safe.Quantity())
	assert.Equal(t, 0, report.Unknown.Quantity())
	assert.Equal(t, SeverityNone, report.Severity)
}

func TestAnalyze_CustomLookup(t *testing.T) {
	p := deck.NewParser()
	d := p.Parse("4 Charizard ex OBF 125\n")

	report := Analyze(d, func(c *cards.Card) (cards.Mark, bool) {
		return cards.MarkH, true
	})

	assert.Equal(t, 4, report.Safe.Quantity())
	assert.Equal(t, 0, report.RotatingQty)
}

func TestAnalyze_EmptyDeck(t *testing.T) {
	report := Analyze(&deck.Deck{}, nil)

	assert.Equal(t, 0, report.TotalCards)
	assert.Equal(t, 0.0, report.Impact)
	assert.Equal(t, SeverityNone, report.Severity)
}

func TestSeverityFor_BandEdges(t *testing.T) {
	tests := []struct {
		impact float64
		want   Severity
	}{
		{0, SeverityNone},
		{0.5, SeverityLow},
		{20, SeverityLow},
		{20.5, SeverityModerate},
		{21, SeverityModerate},
		{40, SeverityModerate},
		{41, SeverityHigh},
		{60, SeverityHigh},
		{60.5, SeverityCritical},
		{61, SeverityCritical},
		{100, SeverityCritical},
	}

	for _, tt := range tests {
		if got := SeverityFor(tt.impact); got != tt.want {
			t.Errorf("SeverityFor(%v) = %v, want %v", tt.impact, got, tt.want)
		}
	}
}

func TestBucket_Cards_Order(t *testing.T) {
	b := &Bucket{}
	b.add(&cards.Card{Name: "Energy", Type: cards.TypeEnergy, Quantity: 1})
	b.add(&cards.Card{Name: "Mon", Type: cards.TypePokemon, Quantity: 1})
	b.add(&cards.Card{Name: "Item", Type: cards.TypeTrainer, Quantity: 1})

	all := b.Cards()
	require.Len(t, all, 3)
	assert.Equal(t, "Mon", all[0].Name)
	assert.Equal(t, "Item", all[1].Name)
	assert.Equal(t, "Energy", all[2].Name)
}
