package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/strumendo/ptcg-companion/internal/ptcg/deck"
	"github.com/strumendo/ptcg-companion/internal/ptcg/rotation"
)

// SavedDeck is a decks table row.
type SavedDeck struct {
	ID         int64
	Name       string
	SourceText string
	TotalCards int
	CreatedAt  time.Time
}

// SavedReport is a rotation_reports table row.
type SavedReport struct {
	ID          int64
	DeckID      int64
	TotalCards  int
	RotatingQty int
	Impact      float64
	Severity    string
	CreatedAt   time.Time
}

// SaveDeck persists a parsed deck together with its source text and
// returns the new deck id.
func (db *DB) SaveDeck(ctx context.Context, d *deck.Deck, sourceText string) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO decks (name, source_text, total_cards) VALUES (?, ?, ?)`,
		d.Name, sourceText, d.TotalCards())
	if err != nil {
		return 0, fmt.Errorf("insert deck: %w", err)
	}
	deckID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("deck id: %w", err)
	}

	for i, c := range d.Cards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO deck_cards (deck_id, position, quantity, name, set_code, set_number, card_type, subtype)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			deckID, i, c.Quantity, c.Name, c.SetCode, c.SetNumber, string(c.Type), string(c.Subtype)); err != nil {
			return 0, fmt.Errorf("insert deck card %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit deck: %w", err)
	}
	return deckID, nil
}

// SaveRotationReport persists a rotation report summary for a saved deck.
func (db *DB) SaveRotationReport(ctx context.Context, deckID int64, report *rotation.Report) (int64, error) {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO rotation_reports (deck_id, total_cards, rotating_qty, impact, severity)
		 VALUES (?, ?, ?, ?, ?)`,
		deckID, report.TotalCards, report.RotatingQty, report.Impact, string(report.Severity))
	if err != nil {
		return 0, fmt.Errorf("insert rotation report: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}
	return id, nil
}

// GetDeck loads a saved deck row by id.
func (db *DB) GetDeck(ctx context.Context, id int64) (*SavedDeck, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, name, source_text, total_cards, created_at FROM decks WHERE id = ?`, id)

	var saved SavedDeck
	if err := row.Scan(&saved.ID, &saved.Name, &saved.SourceText, &saved.TotalCards, &saved.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deck %d not found", id)
		}
		return nil, fmt.Errorf("load deck: %w", err)
	}
	return &saved, nil
}

// ListDecks returns saved decks, newest first.
func (db *DB) ListDecks(ctx context.Context, limit int) ([]*SavedDeck, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, source_text, total_cards, created_at FROM decks ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var decks []*SavedDeck
	for rows.Next() {
		var saved SavedDeck
		if err := rows.Scan(&saved.ID, &saved.Name, &saved.SourceText, &saved.TotalCards, &saved.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, &saved)
	}
	return decks, rows.Err()
}

// ListReports returns rotation report summaries for a deck, newest first.
func (db *DB) ListReports(ctx context.Context, deckID int64) ([]*SavedReport, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, deck_id, total_cards, rotating_qty, impact, severity, created_at
		 FROM rotation_reports WHERE deck_id = ? ORDER BY created_at DESC, id DESC`, deckID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []*SavedReport
	for rows.Next() {
		var saved SavedReport
		if err := rows.Scan(&saved.ID, &saved.DeckID, &saved.TotalCards, &saved.RotatingQty,
			&saved.Impact, &saved.Severity, &saved.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, &saved)
	}
	return reports, rows.Err()
}
