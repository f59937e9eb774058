package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/cardsearch/internal/card"
)

// LoadCards returns every card in corpus order.
func (s *Store) LoadCards(ctx context.Context) ([]card.Card, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM cards ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("load cards: scan: %w", err)
		}
		var c card.Card
		if err := json.Unmarshal([]byte(doc), &c); err != nil {
			return nil, fmt.Errorf("load cards: decode: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	return cards, nil
}

// LoadSets returns the release catalog entries ordered by lowercased name.
func (s *Store) LoadSets(ctx context.Context) ([]card.Set, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM sets ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("load sets: %w", err)
	}
	defer rows.Close()

	var sets []card.Set
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("load sets: scan: %w", err)
		}
		var set card.Set
		if err := json.Unmarshal([]byte(doc), &set); err != nil {
			return nil, fmt.Errorf("load sets: decode: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load sets: %w", err)
	}
	return sets, nil
}

// ReadCard returns the first stored card with the given id.
// Returns (card, false, nil) with a zero card when no card has that id.
func (s *Store) ReadCard(ctx context.Context, id int) (card.Card, bool, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM cards WHERE id = ? ORDER BY position ASC LIMIT 1`, id,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return card.Card{}, false, nil
	}
	if err != nil {
		return card.Card{}, false, fmt.Errorf("read card %d: %w", id, err)
	}

	var c card.Card
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return card.Card{}, false, fmt.Errorf("read card %d: decode: %w", id, err)
	}
	return c, true, nil
}

// Counts returns the number of stored cards and sets.
func (s *Store) Counts(ctx context.Context) (cards, sets int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&cards); err != nil {
		return 0, 0, fmt.Errorf("count cards: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sets`).Scan(&sets); err != nil {
		return 0, 0, fmt.Errorf("count sets: %w", err)
	}
	return cards, sets, nil
}
