package deck

import (
	"fmt"
	"strings"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
)

// ExportOptions controls decklist export behavior.
type ExportOptions struct {
	IncludeHeaders bool // Include the Pokémon/Trainer/Energy section headers
	IncludeStats   bool // Prefix the list with summary counts as comments
}

// Export renders a Deck back to PTCGO text. Without headers the entries
// keep their original order; with headers they are grouped by card type in
// the order the official export uses.
func Export(d *Deck, options *ExportOptions) string {
	if options == nil {
		options = &ExportOptions{IncludeHeaders: true}
	}

	var sb strings.Builder

	if options.IncludeStats {
		fmt.Fprintf(&sb, "# %s\n", displayName(d))
		fmt.Fprintf(&sb, "# Total: %d | Pokemon: %d | Trainer: %d | Energy: %d\n",
			d.TotalCards(), d.PokemonCount(), d.TrainerCount(), d.EnergyCount())
	}

	if !options.IncludeHeaders {
		for _, c := range d.Cards {
			writeCardLine(&sb, c)
		}
		return sb.String()
	}

	sections := []struct {
		header string
		t      cards.CardType
	}{
		{"Pokemon", cards.TypePokemon},
		{"Trainer", cards.TypeTrainer},
		{"Energy", cards.TypeEnergy},
	}
	for _, section := range sections {
		count := d.CountByType(section.t)
		if count == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s: %d\n", section.header, count)
		for _, c := range d.Cards {
			if c.Type == section.t {
				writeCardLine(&sb, c)
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Total Cards: %d\n", d.TotalCards())

	return sb.String()
}

func writeCardLine(sb *strings.Builder, c *cards.Card) {
	if c.SetCode != "" && c.SetNumber != "" {
		fmt.Fprintf(sb, "%d %s %s %s\n", c.Quantity, c.Name, c.SetCode, c.SetNumber)
		return
	}
	fmt.Fprintf(sb, "%d %s\n", c.Quantity, c.Name)
}

func displayName(d *Deck) string {
	if d.Name != "" {
		return d.Name
	}
	return "Unnamed deck"
}
