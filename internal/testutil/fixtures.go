// Package testutil provides shared fixtures and deterministic helpers for tests.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/card"
)

// Card ids of the fixture corpus, in corpus order.
const (
	DesLacooda     = 2326738
	DarkMagician   = 46986414
	CheerfulCoffin = 41142615
	Catastor       = 26593852
	DecodeTalker   = 1861629
	RaSphereMode   = 10000080
	PotOfGreed     = 55144522
	LuckyStraight  = 82308875
)

// CorpusIDs lists every fixture card id in corpus order.
var CorpusIDs = []int{
	DesLacooda, DarkMagician, CheerfulCoffin, Catastor,
	DecodeTalker, RaSphereMode, PotOfGreed, LuckyStraight,
}

// FixturePath returns the absolute path of a file under testutil/testdata.
func FixturePath(name string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("testutil: cannot locate fixture directory")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// LoadCorpus loads the fixture cards and release catalog.
func LoadCorpus(t testing.TB) ([]card.Card, card.Catalog) {
	t.Helper()

	cards, err := card.LoadCardsFile(FixturePath("cards.json"))
	require.NoError(t, err)

	sets, err := card.LoadSetsFile(FixturePath("sets.json"))
	require.NoError(t, err)

	return cards, card.NewCatalog(sets)
}
