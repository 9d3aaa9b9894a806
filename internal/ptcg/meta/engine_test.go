package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func testCatalogue(t *testing.T) *Catalogue {
	t.Helper()

	archetypes := []*Archetype{
		{ID: "charizard", Name: "Charizard ex", MetaShare: 30, Tier: 1,
			LocalizedNames: map[language.Tag]string{language.BrazilianPortuguese: "Charizard ex BR"}},
		{ID: "gardevoir", Name: "Gardevoir ex", MetaShare: 10, Tier: 1},
		{ID: "gholdengo", Name: "Gholdengo ex", MetaShare: 5, Tier: 2},
		{ID: "lugia", Name: "Lugia VSTAR", MetaShare: 5, Tier: 3},
	}
	matchups := []*Matchup{
		{ArchetypeA: "gholdengo", ArchetypeB: "charizard", WinRateA: 60, Derivable: true},
		{ArchetypeA: "gholdengo", ArchetypeB: "gardevoir", WinRateA: 40, Derivable: true},
		// Asymmetric pair: stored directions disagree with 100-x.
		{ArchetypeA: "charizard", ArchetypeB: "gardevoir", WinRateA: 55, Derivable: true},
		{ArchetypeA: "gardevoir", ArchetypeB: "charizard", WinRateA: 48},
		// One-way record that must not be derived in reverse.
		{ArchetypeA: "charizard", ArchetypeB: "lugia", WinRateA: 62},
	}

	c, err := NewCatalogue(archetypes, matchups)
	require.NoError(t, err)
	return c
}

func TestCatalogue_Matchup_Direct(t *testing.T) {
	c := testCatalogue(t)

	m, err := c.Matchup("gholdengo", "charizard")
	require.NoError(t, err)
	assert.Equal(t, 60.0, m.WinRateA)
}

func TestCatalogue_Matchup_DerivedReverse(t *testing.T) {
	c := testCatalogue(t)

	m, err := c.Matchup("charizard", "gholdengo")
	require.NoError(t, err)
	assert.Equal(t, 40.0, m.WinRateA)
	assert.True(t, m.Derivable)
}

func TestCatalogue_Matchup_NonDerivableReverseIsNoData(t *testing.T) {
	c := testCatalogue(t)

	_, err := c.Matchup("lugia", "charizard")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCatalogue_Matchup_AsymmetryPreserved(t *testing.T) {
	c := testCatalogue(t)

	// Both directions are stored; the stored record wins over derivation,
	// so 55 and 48 survive even though they do not sum to 100.
	ab, err := c.Matchup("charizard", "gardevoir")
	require.NoError(t, err)
	ba, err := c.Matchup("gardevoir", "charizard")
	require.NoError(t, err)

	assert.Equal(t, 55.0, ab.WinRateA)
	assert.Equal(t, 48.0, ba.WinRateA)
}

func TestCatalogue_Matchup_UnknownArchetype(t *testing.T) {
	c := testCatalogue(t)

	_, err := c.Matchup("charizard", "missing")
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestCatalogue_MetaScore_WeightedByShare(t *testing.T) {
	c := testCatalogue(t)

	// Gholdengo has recorded matchups against charizard (60, share 30)
	// and gardevoir (40, share 10); lugia has no record and contributes
	// no weight: (60*30 + 40*10) / 40 = 55.
	score, err := c.MetaScore("gholdengo")
	require.NoError(t, err)
	assert.InDelta(t, 55.0, score, 0.001)
}

func TestCatalogue_MetaScore_NoRecords(t *testing.T) {
	archetypes := []*Archetype{
		{ID: "a", Name: "A", MetaShare: 50},
		{ID: "b", Name: "B", MetaShare: 50},
	}
	c, err := NewCatalogue(archetypes, nil)
	require.NoError(t, err)

	_, err = c.MetaScore("a")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCatalogue_MetaScore_UnknownArchetype(t *testing.T) {
	c := testCatalogue(t)

	_, err := c.MetaScore("missing")
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestCatalogue_BestAgainst(t *testing.T) {
	c := testCatalogue(t)

	// Against charizard: gholdengo wins 60, gardevoir wins 48.
	best, err := c.BestAgainst([]string{"charizard"})
	require.NoError(t, err)
	assert.Equal(t, "gholdengo", best)
}

func TestCatalogue_BestAgainst_ExcludesZeroOverlap(t *testing.T) {
	c := testCatalogue(t)

	// Only charizard has a record against lugia.
	best, err := c.BestAgainst([]string{"lugia"})
	require.NoError(t, err)
	assert.Equal(t, "charizard", best)
}

func TestCatalogue_BestAgainst_TiesBreakByShare(t *testing.T) {
	archetypes := []*Archetype{
		{ID: "opp", Name: "Opponent", MetaShare: 20},
		{ID: "low", Name: "Low Share", MetaShare: 5},
		{ID: "high", Name: "High Share", MetaShare: 15},
	}
	matchups := []*Matchup{
		{ArchetypeA: "low", ArchetypeB: "opp", WinRateA: 55},
		{ArchetypeA: "high", ArchetypeB: "opp", WinRateA: 55},
	}
	c, err := NewCatalogue(archetypes, matchups)
	require.NoError(t, err)

	best, err := c.BestAgainst([]string{"opp"})
	require.NoError(t, err)
	assert.Equal(t, "high", best)
}

func TestCatalogue_BestCounters_RankedAndLimited(t *testing.T) {
	c := testCatalogue(t)

	counters, err := c.BestCounters([]string{"charizard", "gardevoir"}, 2)
	require.NoError(t, err)
	require.Len(t, counters, 2)

	// Gholdengo averages (60+40)/2 = 50 against the pool. Charizard's
	// only counted record is against gardevoir (55); gardevoir's is
	// against charizard (48).
	assert.Equal(t, "charizard", counters[0].ArchetypeID)
	assert.Equal(t, 55.0, counters[0].Average)
	assert.Equal(t, "gholdengo", counters[1].ArchetypeID)
	assert.Equal(t, 50.0, counters[1].Average)
}

func TestCatalogue_FindArchetypeByName(t *testing.T) {
	c := testCatalogue(t)

	a, err := c.FindArchetypeByName("charizard EX", language.English)
	require.NoError(t, err)
	assert.Equal(t, "charizard", a.ID)

	a, err = c.FindArchetypeByName("Charizard ex BR", language.BrazilianPortuguese)
	require.NoError(t, err)
	assert.Equal(t, "charizard", a.ID)

	_, err = c.FindArchetypeByName("nope", language.English)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestNewCatalogue_RejectsBadInput(t *testing.T) {
	_, err := NewCatalogue([]*Archetype{{Name: "no id"}}, nil)
	assert.Error(t, err)

	_, err = NewCatalogue(
		[]*Archetype{{ID: "a", Name: "A"}, {ID: "a", Name: "A again"}}, nil)
	assert.Error(t, err)

	_, err = NewCatalogue(
		[]*Archetype{{ID: "a", Name: "A"}},
		[]*Matchup{{ArchetypeA: "a", ArchetypeB: "ghost", WinRateA: 50}})
	assert.Error(t, err)
}
