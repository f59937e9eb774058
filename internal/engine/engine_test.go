package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/engine"
	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/query"
	"github.com/roach88/cardsearch/internal/testutil"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	cards, catalog := testutil.LoadCorpus(t)
	e, err := engine.New(engine.NewSnapshot(cards, catalog), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

var searchCases = []struct {
	query string
	want  []int
}{
	{"l=3", []int{testutil.DesLacooda}},
	{"level=7", []int{testutil.DarkMagician, testutil.LuckyStraight}},
	{"level=4|5|6", []int{testutil.Catastor}},
	{"def=?", []int{testutil.RaSphereMode}},
	{"atk=?", []int{testutil.RaSphereMode}},
	{"atk>?", nil},
	{"def<=?", nil},
	{"atk>=2000", []int{testutil.DarkMagician, testutil.Catastor, testutil.DecodeTalker}},
	{"atk!=500", []int{testutil.DarkMagician, testutil.Catastor, testutil.DecodeTalker, testutil.RaSphereMode, testutil.LuckyStraight}},
	{"def<1000", []int{testutil.DesLacooda, testutil.RaSphereMode, testutil.LuckyStraight}},
	{"set:ap03", []int{testutil.DesLacooda}},
	{"set:ap0", nil},
	{"set:lob", []int{testutil.DarkMagician, testutil.PotOfGreed}},
	{"p>300", []int{testutil.DarkMagician}},
	{"p<350", []int{testutil.DesLacooda, testutil.CheerfulCoffin, testutil.DecodeTalker, testutil.RaSphereMode, testutil.PotOfGreed, testutil.LuckyStraight}},
	{"ally of justice", []int{testutil.Catastor}},
	{"a/j", []int{testutil.Catastor}},
	{"c:spell", []int{testutil.CheerfulCoffin, testutil.PotOfGreed}},
	{"c:link", []int{testutil.DecodeTalker}},
	{"c:xyz", []int{testutil.LuckyStraight}},
	{"c:spell legal=0", []int{testutil.PotOfGreed}},
	{"t:spellcaster", []int{testutil.DarkMagician}},
	{"t:normal", []int{testutil.CheerfulCoffin, testutil.PotOfGreed}},
	{"t=dragon", nil},
	{"a:dark", []int{testutil.DarkMagician, testutil.Catastor, testutil.DecodeTalker}},
	{"a!=dark", []int{testutil.DesLacooda, testutil.RaSphereMode, testutil.LuckyStraight}},
	{`o:"draw 1 card"`, []int{testutil.DesLacooda}},
	{"o:draw", []int{testutil.DesLacooda, testutil.PotOfGreed}},
	{`o:/(draw|discard) (\d|up)/`, []int{testutil.DesLacooda, testutil.CheerfulCoffin, testutil.PotOfGreed}},
	{"year<2003", []int{testutil.DarkMagician, testutil.CheerfulCoffin, testutil.PotOfGreed}},
	{"y>=2011", []int{testutil.DecodeTalker, testutil.RaSphereMode, testutil.LuckyStraight}},
	{"genesys>0", []int{testutil.PotOfGreed}},
	{"link=3", []int{testutil.DecodeTalker}},
	{"name=7", []int{testutil.LuckyStraight}},
	{"name!=dark", []int{testutil.DesLacooda, testutil.CheerfulCoffin, testutil.Catastor, testutil.DecodeTalker, testutil.RaSphereMode, testutil.PotOfGreed, testutil.LuckyStraight}},
	{"atk>=2000 name=/magician|talker/", []int{testutil.DarkMagician, testutil.DecodeTalker}},
	{"  greedy  ", []int{testutil.PotOfGreed}},
}

func TestEngine_Search(t *testing.T) {
	e := newEngine(t)

	for _, tc := range searchCases {
		t.Run(tc.query, func(t *testing.T) {
			res, err := e.Search(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.IDs)
		})
	}
}

func TestEngine_ParallelScanMatchesSequential(t *testing.T) {
	sequential := newEngine(t)
	parallel := newEngine(t, engine.WithWorkers(3), engine.WithPartitionSize(2))
	assert.Equal(t, 3, parallel.Scanner().Workers())

	for _, tc := range searchCases {
		want, err := sequential.Search(tc.query)
		require.NoError(t, err)
		got, err := parallel.Search(tc.query)
		require.NoError(t, err)
		assert.Equal(t, want.IDs, got.IDs, tc.query)
	}
}

func TestEngine_SearchErrors(t *testing.T) {
	e := newEngine(t)

	for _, q := range []string{"atk<=>1", "foo=bar", "l===10", "t=", "=100", ""} {
		_, err := e.Search(q)
		assert.True(t, query.IsParseError(err), q)
	}
	for _, q := range []string{"t>dragon", "l=?", "atk=abc"} {
		_, err := e.Search(q)
		assert.True(t, filter.IsCompileError(err), q)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	e := newEngine(t)

	first, err := e.Search("atk>=2000 a:dark o:monster")
	require.NoError(t, err)
	second, err := e.Search("atk>=2000 a:dark o:monster")
	require.NoError(t, err)

	assert.Equal(t, first.IDs, second.IDs)
	assert.Equal(t, first.Query.Clauses, second.Query.Clauses)
}

func TestEngine_Snapshot(t *testing.T) {
	e := newEngine(t)
	snap := e.Snapshot()

	assert.Equal(t, len(testutil.CorpusIDs), snap.Len())
	assert.Equal(t, 10, snap.Catalog().Len())

	c, ok := snap.Record(testutil.PotOfGreed)
	require.True(t, ok)
	assert.Equal(t, "Pot of Greed", c.Name)

	_, ok = snap.Record(1)
	assert.False(t, ok)

	p, ok := snap.Projection(testutil.DarkMagician)
	require.True(t, ok)
	assert.Equal(t, query.Numerical(2500), p.Value(query.Atk))
}
