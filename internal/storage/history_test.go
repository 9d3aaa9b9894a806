package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
	"github.com/strumendo/ptcg-companion/internal/ptcg/rotation"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(DefaultConfig(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveDeck_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	source := "4 Charizard ex OBF 125\n6 Basic Fire Energy SVE 2\n"
	d := deck.NewParser().ParseNamed("Charizard", source)

	id, err := db.SaveDeck(ctx, d, source)
	require.NoError(t, err)
	require.NotZero(t, id)

	saved, err := db.GetDeck(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Charizard", saved.Name)
	assert.Equal(t, source, saved.SourceText)
	assert.Equal(t, 10, saved.TotalCards)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestGetDeck_NotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetDeck(context.Background(), 999)
	assert.Error(t, err)
}

func TestListDecks_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	p := deck.NewParser()

	first, err := db.SaveDeck(ctx, p.ParseNamed("first", "4 Switch SVI 194\n"), "")
	require.NoError(t, err)
	second, err := db.SaveDeck(ctx, p.ParseNamed("second", "4 Switch SVI 194\n"), "")
	require.NoError(t, err)

	decks, err := db.ListDecks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, second, decks[0].ID)
	assert.Equal(t, first, decks[1].ID)
}

func TestSaveRotationReport(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	d := deck.NewParser().ParseNamed("Charizard", "4 Charizard ex OBF 125\n")
	deckID, err := db.SaveDeck(ctx, d, "")
	require.NoError(t, err)

	report := rotation.Analyze(d, nil)
	reportID, err := db.SaveRotationReport(ctx, deckID, report)
	require.NoError(t, err)
	require.NotZero(t, reportID)

	reports, err := db.ListReports(ctx, deckID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 4, reports[0].RotatingQty)
	assert.Equal(t, string(rotation.SeverityCritical), reports[0].Severity)
	assert.InDelta(t, 100.0, reports[0].Impact, 0.001)
}
