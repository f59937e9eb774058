package engine

import (
	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/projection"
)

// Snapshot is the frozen corpus: records, their projections, and the release
// catalog they were projected with.
//
// A Snapshot never changes after NewSnapshot returns and is safe for
// concurrent use.
type Snapshot struct {
	cards       []card.Card
	byID        map[int]int // id -> index into cards
	projections []projection.Projection
	catalog     card.Catalog
}

// NewSnapshot builds a snapshot. The cards slice is copied; corpus order is
// the order of cards. When ids repeat, Record resolves to the first record.
func NewSnapshot(cards []card.Card, catalog card.Catalog) *Snapshot {
	owned := make([]card.Card, len(cards))
	copy(owned, cards)

	byID := make(map[int]int, len(owned))
	for i, c := range owned {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = i
		}
	}

	return &Snapshot{
		cards:       owned,
		byID:        byID,
		projections: projection.Build(owned, catalog),
		catalog:     catalog,
	}
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	return len(s.cards)
}

// Record returns the record with the given id.
func (s *Snapshot) Record(id int) (card.Card, bool) {
	i, ok := s.byID[id]
	if !ok {
		return card.Card{}, false
	}
	return s.cards[i], true
}

// Projection returns the projection of the record with the given id.
func (s *Snapshot) Projection(id int) (*projection.Projection, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.projections[i], true
}

// Projections returns all projections in corpus order. Callers must not
// modify the returned slice.
func (s *Snapshot) Projections() []projection.Projection {
	return s.projections
}

// Catalog returns the release catalog.
func (s *Snapshot) Catalog() card.Catalog {
	return s.catalog
}
