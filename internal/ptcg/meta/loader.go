package meta

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
)

//go:embed data/catalogue.json
var catalogueFS embed.FS

// catalogueFile is the JSON import shape for the catalogue.
type catalogueFile struct {
	Archetypes []archetypeRecord `json:"archetypes"`
	Matchups   []matchupRecord   `json:"matchups"`
}

type archetypeRecord struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	NamePT     string       `json:"name_pt,omitempty"`
	Tier       int          `json:"tier"`
	MetaShare  float64      `json:"meta_share"`
	Strategy   string       `json:"strategy,omitempty"`
	Strengths  []string     `json:"strengths,omitempty"`
	Weaknesses []string     `json:"weaknesses,omitempty"`
	Deck       []deckRecord `json:"deck"`
}

type deckRecord struct {
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	SetCode   string `json:"set_code,omitempty"`
	SetNumber string `json:"set_number,omitempty"`
}

type matchupRecord struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	WinRateA  float64 `json:"win_rate_a"`
	Notes     string  `json:"notes,omitempty"`
	Derivable bool    `json:"derivable,omitempty"`
}

// Load builds the catalogue from the embedded default data.
func Load(logger *slog.Logger) (*Catalogue, error) {
	data, err := catalogueFS.ReadFile("data/catalogue.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogue: %w", err)
	}
	return loadBytes(data, logger)
}

// LoadFile builds the catalogue from a JSON file, overriding the embedded
// default.
func LoadFile(path string, logger *slog.Logger) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue file: %w", err)
	}
	return loadBytes(data, logger)
}

func loadBytes(data []byte, logger *slog.Logger) (*Catalogue, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var file catalogueFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	archetypes := make([]*Archetype, 0, len(file.Archetypes))
	for _, rec := range file.Archetypes {
		a := &Archetype{
			ID:         rec.ID,
			Name:       rec.Name,
			Tier:       rec.Tier,
			MetaShare:  rec.MetaShare,
			Strategy:   rec.Strategy,
			Strengths:  rec.Strengths,
			Weaknesses: rec.Weaknesses,
			Deck:       buildDeck(rec),
		}
		if rec.NamePT != "" {
			a.LocalizedNames = map[language.Tag]string{
				language.BrazilianPortuguese: rec.NamePT,
			}
		}
		// Decks that do not total 60 are kept; the engine reports, it
		// does not reject.
		if total := a.Deck.TotalCards(); total != 60 {
			logger.Warn("catalogue deck does not total 60 cards",
				"archetype", rec.ID, "total", total)
		}
		archetypes = append(archetypes, a)
	}

	matchups := make([]*Matchup, 0, len(file.Matchups))
	for _, rec := range file.Matchups {
		matchups = append(matchups, &Matchup{
			ArchetypeA: rec.A,
			ArchetypeB: rec.B,
			WinRateA:   rec.WinRateA,
			Notes:      rec.Notes,
			Derivable:  rec.Derivable,
		})
	}

	return NewCatalogue(archetypes, matchups)
}

func buildDeck(rec archetypeRecord) *deck.Deck {
	d := &deck.Deck{Name: rec.Name}
	classifier := cards.NewClassifier()
	for _, entry := range rec.Deck {
		if entry.Quantity <= 0 || entry.Name == "" {
			continue
		}
		d.Cards = append(d.Cards, classifier.BuildCard(entry.Name, entry.Quantity, entry.SetCode, entry.SetNumber))
	}
	return d
}
