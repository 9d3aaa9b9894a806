package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/strumendo/ptcg-companion/internal/config"
	"github.com/strumendo/ptcg-companion/internal/ptcg/cards"
	"github.com/strumendo/ptcg-companion/internal/ptcg/compare"
	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
	"github.com/strumendo/ptcg-companion/internal/ptcg/meta"
	"github.com/strumendo/ptcg-companion/internal/ptcg/rotation"
	"github.com/strumendo/ptcg-companion/internal/ptcg/subs"
	"github.com/strumendo/ptcg-companion/internal/storage"
	"github.com/strumendo/ptcg-companion/internal/version"
	"github.com/strumendo/ptcg-companion/internal/watcher"
)

var (
	deckPath  = flag.String("deck", "", "Path to a PTCGO-format decklist file")
	deckName  = flag.String("name", "", "Display name for the deck (defaults to the file name)")
	otherPath = flag.String("compare", "", "Path to a second decklist to compare against")

	metaID    = flag.String("meta", "", "Archetype id or name to compute the weighted meta score for")
	againstID = flag.String("against", "", "Comma-separated archetype ids or names to find the best counter for")
	showSubs  = flag.Bool("subs", false, "Suggest substitutions for the deck's rotating cards")
	identify  = flag.Bool("identify", false, "Match the deck against the catalogued archetypes")

	cataloguePath = flag.String("catalogue", "", "Path to a catalogue JSON file (overrides the embedded one)")
	jsonOutput    = flag.Bool("json", false, "Emit reports as JSON instead of text")
	saveHistory   = flag.Bool("save", false, "Persist the deck and rotation report to the history database")
	watchMode     = flag.Bool("watch", false, "Re-run the analysis whenever the decklist file changes")

	debugMode      = flag.Bool("debug-mode", false, "Enable verbose debug logging")
	debugModeShort = flag.Bool("d", false, "Enable debug logging (shorthand for -debug-mode)")
	showVersion    = flag.Bool("version", false, "Print the application version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("ptcg-companion %s\n", version.GetVersion())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level := slog.LevelInfo
	if *debugMode || *debugModeShort || cfg.App.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	catalogue, err := loadCatalogue(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load meta catalogue: %v", err)
	}

	app := &application{
		cfg:       cfg,
		logger:    logger,
		catalogue: catalogue,
		parser:    deck.NewParser(),
	}

	// Catalogue-only queries need no decklist.
	if *deckPath == "" {
		if *metaID == "" && *againstID == "" {
			flag.Usage()
			os.Exit(2)
		}
		if err := app.runCatalogueQueries(); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if *watchMode {
		runWatch(app)
		return
	}

	if err := app.runOnce(); err != nil {
		log.Fatalf("%v", err)
	}
}

func loadCatalogue(cfg *config.Config, logger *slog.Logger) (*meta.Catalogue, error) {
	path := *cataloguePath
	if path == "" {
		path = cfg.Catalogue.FilePath
	}
	if path != "" {
		return meta.LoadFile(path, logger)
	}
	return meta.Load(logger)
}

type application struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalogue *meta.Catalogue
	parser    *deck.Parser
}

// runOnce runs every requested analysis for the configured decklist.
func (app *application) runOnce() error {
	d, source, err := app.loadDeck(*deckPath, *deckName)
	if err != nil {
		return err
	}

	report := rotation.Analyze(d, nil)

	out := &output{Deck: d, Rotation: report}

	if *otherPath != "" {
		other, _, err := app.loadDeck(*otherPath, "")
		if err != nil {
			return err
		}
		out.Comparison = compare.Compare(d, other)
		out.Matchup = compare.AnalyzeMatchup(d, other)
	}

	if *identify {
		out.Identity = app.identifyArchetype(d)
	}

	if *showSubs {
		out.Substitutions = subs.FindSubstitutions(
			report.Rotating.Cards(), app.candidatePool(), nil)
	}

	if *jsonOutput {
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
	} else {
		app.display(out)
	}

	if err := app.runCatalogueQueries(); err != nil {
		return err
	}

	if *saveHistory || app.cfg.History.Enabled {
		if err := app.persist(d, source, report); err != nil {
			return err
		}
	}

	return nil
}

// runCatalogueQueries answers -meta and -against queries.
func (app *application) runCatalogueQueries() error {
	if *metaID != "" {
		id, err := app.resolveArchetype(*metaID)
		if err != nil {
			return err
		}
		score, err := app.catalogue.MetaScore(id)
		switch {
		case err == nil:
			displayMetaScore(app.catalogue, id, score)
		case isNoData(err):
			fmt.Printf("Meta score for %s: no recorded matchups\n", id)
		default:
			return err
		}
	}

	if *againstID != "" {
		var opponents []string
		for _, raw := range splitIDs(*againstID) {
			id, err := app.resolveArchetype(raw)
			if err != nil {
				return err
			}
			opponents = append(opponents, id)
		}
		counters, err := app.catalogue.BestCounters(opponents, 5)
		switch {
		case err == nil:
			displayCounters(app.catalogue, opponents, counters)
		case isNoData(err):
			fmt.Println("No catalogued archetype has recorded matchups against that pool.")
		default:
			return err
		}
	}

	return nil
}

// resolveArchetype accepts either a catalogue id or a display name in any
// configured locale, preferring the configured one.
func (app *application) resolveArchetype(ref string) (string, error) {
	if _, err := app.catalogue.Archetype(ref); err == nil {
		return ref, nil
	}
	a, err := app.catalogue.FindArchetypeByName(ref, app.cfg.GetLocale())
	if err != nil {
		return "", fmt.Errorf("unknown archetype %q", ref)
	}
	return a.ID, nil
}

func (app *application) loadDeck(path, name string) (*deck.Deck, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read decklist: %w", err)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	d := app.parser.ParseNamed(name, string(data))
	for _, warning := range d.Warnings {
		app.logger.Warn("decklist parse warning", "deck", name, "detail", warning)
	}
	return d, string(data), nil
}

// identifyArchetype ranks catalogued archetypes by similarity to the deck.
func (app *application) identifyArchetype(d *deck.Deck) []archetypeMatch {
	var matches []archetypeMatch
	for _, archetype := range app.catalogue.Archetypes() {
		comparison := compare.Compare(d, archetype.Deck)
		matches = append(matches, archetypeMatch{
			ArchetypeID: archetype.ID,
			Name:        archetype.Name,
			Similarity:  comparison.Similarity,
		})
	}
	// Highest similarity first; id breaks ties deterministically.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].ArchetypeID < matches[j].ArchetypeID
	})
	return matches
}

// candidatePool gathers rotation-safe cards from all catalogued decks to
// score as substitution candidates.
func (app *application) candidatePool() []*cards.Card {
	seen := make(map[string]bool)
	var pool []*cards.Card
	for _, archetype := range app.catalogue.Archetypes() {
		safe := rotation.Analyze(archetype.Deck, nil).Safe
		for _, c := range safe.Cards() {
			if seen[c.Key()] {
				continue
			}
			seen[c.Key()] = true
			pool = append(pool, c)
		}
	}
	return pool
}

func (app *application) persist(d *deck.Deck, source string, report *rotation.Report) error {
	path := app.cfg.History.Path
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "history.db")
	}

	db, err := storage.Open(storage.DefaultConfig(path))
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	deckID, err := db.SaveDeck(ctx, d, source)
	if err != nil {
		return err
	}
	if _, err := db.SaveRotationReport(ctx, deckID, report); err != nil {
		return err
	}
	app.logger.Info("saved analysis to history", "deck_id", deckID, "path", path)
	return nil
}

func runWatch(app *application) {
	debounce, err := app.cfg.GetWatchDebounce()
	if err != nil {
		log.Fatalf("Invalid watch debounce: %v", err)
	}

	files := []string{*deckPath}
	if *otherPath != "" {
		files = append(files, *otherPath)
	}
	if *cataloguePath != "" {
		files = append(files, *cataloguePath)
	}

	w, err := watcher.New(files, debounce, app.logger)
	if err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func() {
		if err := app.runOnce(); err != nil {
			app.logger.Error("analysis failed", "error", err)
		}
	}
	run()

	app.logger.Info("watching for changes", "files", strings.Join(files, ", "))
	if err := w.Run(ctx, run); err != nil && err != context.Canceled {
		log.Fatalf("Watcher stopped: %v", err)
	}
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func isNoData(err error) bool {
	return errors.Is(err, meta.ErrNoData)
}
