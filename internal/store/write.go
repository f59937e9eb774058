package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/cardsearch/internal/card"
)

// ErrReadOnly is returned when writing through a store opened read-only.
var ErrReadOnly = errors.New("store is read-only")

// Import replaces the snapshot with cards and sets in one transaction.
// Card order is preserved. Sets with the same lowercased name collapse to the
// last one, as in card.NewCatalog.
func (s *Store) Import(ctx context.Context, cards []card.Card, sets []card.Set) error {
	if s.readOnly {
		return ErrReadOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import: begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM cards", "DELETE FROM sets"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("import: clear: %w", err)
		}
	}

	insertCard, err := tx.PrepareContext(ctx, `INSERT INTO cards (position, id, name, doc) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("import: prepare cards: %w", err)
	}
	defer insertCard.Close()

	for i, c := range cards {
		doc, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("import: marshal card %d: %w", c.ID, err)
		}
		if _, err := insertCard.ExecContext(ctx, i, c.ID, c.Name, string(doc)); err != nil {
			return fmt.Errorf("import: card %d: %w", c.ID, err)
		}
	}

	insertSet, err := tx.PrepareContext(ctx, `
		INSERT INTO sets (name, doc) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET doc = excluded.doc
	`)
	if err != nil {
		return fmt.Errorf("import: prepare sets: %w", err)
	}
	defer insertSet.Close()

	for _, set := range sets {
		doc, err := json.Marshal(set)
		if err != nil {
			return fmt.Errorf("import: marshal set %q: %w", set.Name, err)
		}
		if _, err := insertSet.ExecContext(ctx, strings.ToLower(set.Name), string(doc)); err != nil {
			return fmt.Errorf("import: set %q: %w", set.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: commit: %w", err)
	}
	return nil
}
