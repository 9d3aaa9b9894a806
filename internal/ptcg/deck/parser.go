package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
)

// Parser parses PTCGO-format decklist text into a Deck.
type Parser struct {
	classifier *cards.Classifier
}

// NewParser creates a parser with the default classifier.
func NewParser() *Parser {
	return &Parser{classifier: cards.NewClassifier()}
}

// NewParserWithClassifier creates a parser with a custom classifier.
func NewParserWithClassifier(classifier *cards.Classifier) *Parser {
	return &Parser{classifier: classifier}
}

var (
	// Card line: "4 Charizard ex OBF 125" or "6 Basic Fire Energy" (the
	// trailing set code + collector number is optional). The collector
	// number is kept as a string since it may carry leading zeros or a
	// letter suffix.
	cardLine = regexp.MustCompile(`^(\d+)\s+(.+?)(?:\s+([A-Z]{2,4}(?:-[A-Z]{2})?)\s+(\d+[a-zA-Z]?))?$`)

	// Section headers in the PTCGO export, with an optional trailing
	// count: "Pokemon: 12", "Trainer - 34", "Energia: 8".
	sectionHeader = regexp.MustCompile(`(?i)^(pok[eé]mon|trainer(s)?|treinador(es)?|energy|energia(s)?)\s*[:\-]?\s*(\d+)?$`)

	// Trailer line the official export appends: "Total Cards: 60".
	totalLine = regexp.MustCompile(`(?i)^total cards\s*[:\-]?\s*\d*$`)

	commentLine = regexp.MustCompile(`^\s*(#|//)`)
)

// Parse turns decklist text into a Deck. It never fails: comment lines,
// section headers and blank lines are dropped, and malformed lines are
// skipped with a warning instead of aborting the parse. A decklist with
// zero valid lines yields an empty, valid Deck.
func (p *Parser) Parse(text string) *Deck {
	return p.ParseNamed("", text)
}

// ParseNamed is Parse with an explicit deck display name.
func (p *Parser) ParseNamed(name, text string) *Deck {
	d := &Deck{Name: name, Cards: make([]*cards.Card, 0)}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || commentLine.MatchString(line) {
			continue
		}
		if sectionHeader.MatchString(trimmed) || totalLine.MatchString(trimmed) {
			continue
		}

		matches := cardLine.FindStringSubmatch(trimmed)
		if matches == nil {
			d.Warnings = append(d.Warnings, fmt.Sprintf("line %d: could not parse %q", i+1, trimmed))
			continue
		}

		quantity, err := strconv.Atoi(matches[1])
		if err != nil || quantity <= 0 {
			d.Warnings = append(d.Warnings, fmt.Sprintf("line %d: invalid quantity %q", i+1, matches[1]))
			continue
		}

		d.Cards = append(d.Cards, p.classifier.BuildCard(matches[2], quantity, matches[3], matches[4]))
	}

	return d
}
