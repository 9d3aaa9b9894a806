package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
)

const sampleDecklist = `Pokemon: 8
4 Charizard ex OBF 125
4 Charmander MEW 4

Trainer: 8
4 Ultra Ball SVI 196
4 Professor's Research SVI 189

Energy: 6
6 Basic Fire Energy SVE 2

Total Cards: 22
`

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	d := p.ParseNamed("Charizard", sampleDecklist)

	require.Len(t, d.Cards, 5)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, "Charizard", d.Name)
	assert.Equal(t, 22, d.TotalCards())
	assert.Equal(t, 8, d.PokemonCount())
	assert.Equal(t, 8, d.TrainerCount())
	assert.Equal(t, 6, d.EnergyCount())

	first := d.Cards[0]
	assert.Equal(t, "Charizard ex", first.Name)
	assert.Equal(t, 4, first.Quantity)
	assert.Equal(t, "OBF", first.SetCode)
	assert.Equal(t, "125", first.SetNumber)
	assert.Equal(t, cards.TypePokemon, first.Type)
}

func TestParser_Parse_NoSetCode(t *testing.T) {
	p := NewParser()

	d := p.Parse("6 Basic Fire Energy\n")

	require.Len(t, d.Cards, 1)
	c := d.Cards[0]
	assert.Equal(t, "Basic Fire Energy", c.Name)
	assert.Equal(t, "", c.SetCode)
	assert.Equal(t, "", c.SetNumber)
	assert.True(t, c.BasicEnergy)
}

func TestParser_Parse_SkipsCommentsAndMalformedLines(t *testing.T) {
	p := NewParser()

	text := `# my rotation deck
// second comment style
4 Charizard ex OBF 125
not a card line
0 Ultra Ball SVI 196
`
	d := p.Parse(text)

	require.Len(t, d.Cards, 1)
	require.Len(t, d.Warnings, 2)
	assert.Contains(t, d.Warnings[0], "line 4")
	assert.Contains(t, d.Warnings[1], "invalid quantity")
}

func TestParser_Parse_PortugueseHeaders(t *testing.T) {
	p := NewParser()

	text := `Treinadores: 4
4 Ultra Ball SVI 196
Energias: 6
6 Energia Fogo Básica
`
	d := p.Parse(text)

	require.Len(t, d.Cards, 2)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, cards.TypeTrainer, d.Cards[0].Type)
	assert.Equal(t, cards.TypeEnergy, d.Cards[1].Type)
	assert.Equal(t, cards.EnergyFire, d.Cards[1].EnergyType)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	p := NewParser()

	d := p.Parse("")

	assert.Empty(t, d.Cards)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, 0, d.TotalCards())
}

func TestParser_Parse_Deterministic(t *testing.T) {
	p := NewParser()

	a := Export(p.Parse(sampleDecklist), nil)
	b := Export(p.Parse(sampleDecklist), nil)

	assert.Equal(t, a, b)
}

func TestExport_RoundTripWithoutHeaders(t *testing.T) {
	p := NewParser()

	text := "4 Charizard ex OBF 125\n4 Ultra Ball SVI 196\n6 Basic Fire Energy SVE 2\n"
	d := p.Parse(text)

	out := Export(d, &ExportOptions{})
	assert.Equal(t, text, out)
}

func TestExport_GroupsByType(t *testing.T) {
	p := NewParser()

	// Energy listed first in the input; the headered export regroups it
	// into the official section order.
	text := "6 Basic Fire Energy SVE 2\n4 Charizard ex OBF 125\n"
	out := Export(p.Parse(text), &ExportOptions{IncludeHeaders: true})

	assert.Contains(t, out, "Pokemon: 4\n4 Charizard ex OBF 125\n")
	assert.Contains(t, out, "Energy: 6\n6 Basic Fire Energy SVE 2\n")
	assert.Contains(t, out, "Total Cards: 10\n")
}

func TestDeck_Quantities_MergesDuplicateEntries(t *testing.T) {
	p := NewParser()

	d := p.Parse("2 Ultra Ball SVI 196\n2 Ultra Ball SVI 196\n")

	quantities := d.Quantities()
	assert.Equal(t, 4, quantities["Ultra Ball|SVI|196"])
	assert.Len(t, quantities, 1)
}
