package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/projection"
	"github.com/roach88/cardsearch/internal/query"
	"github.com/roach88/cardsearch/internal/testutil"
)

// Clauses exercising every predicate variant and every field.
var agreementQueries = []string{
	"atk>=2000", "atk=?", "atk!=?", "atk>?", "def<=?", "atk!=500", "def<1000", "def=?", "def!=?",
	"l=3", "level=4|5|6", "link=3", "legal=0", "legal!=3", "genesys>0",
	"year<2003", "y>=2011", "p>300", "p<350", "p=12",
	"a:dark", "a!=dark", "a=dark|light", "a=/^d/",
	"t:spellcaster", "t:normal", "t!=normal", "t=dragon",
	"c:spell", "c:link", "c!=monster", "c:xyz|link",
	"set:ap03", "set:ap0", "set:lob", "set!=lob", "set=/^l/",
	"name=dark", "name!=dark", "name=7", "name=/magician|talker/", "a/j",
	"o:draw", "o!=draw", `o:"draw 1 card"`, `o:/(draw|discard) (\d|up)/`, "o:3",
}

func TestEval_AgreesWithMatch(t *testing.T) {
	cards, catalog := testutil.LoadCorpus(t)
	projections := projection.Build(cards, catalog)

	for _, input := range agreementQueries {
		clauses, err := query.Parse(input)
		require.NoError(t, err, input)
		require.Len(t, clauses, 1, input)
		c := clauses[0]

		pred, err := filter.Build(c)
		require.NoError(t, err, input)

		for i := range projections {
			p := &projections[i]
			want := filter.Match(c.Op, p.Value(c.Field), c.Value)
			assert.Equal(t, want, filter.Eval(pred, p), "%s on card %d", input, p.ID)
		}
	}
}

func TestEval_AbsentFieldsNeverMatch(t *testing.T) {
	cards, catalog := testutil.LoadCorpus(t)
	projections := projection.Build(cards, catalog)

	// The Cheerful Coffin is a spell: no ATK, DEF, level, link rating or attribute.
	coffin := &projections[2]
	require.Equal(t, testutil.CheerfulCoffin, coffin.ID)

	for _, input := range []string{
		"atk=0", "atk!=0", "atk<99999", "atk>-5", "atk=?", "atk!=?",
		"def=0", "def!=0", "def=?", "def!=?",
		"l!=3", "l<100", "link!=1", "a!=dark", "a=/./",
	} {
		clauses, err := query.Parse(input)
		require.NoError(t, err)
		pred, err := filter.Build(clauses[0])
		require.NoError(t, err)
		assert.False(t, filter.Eval(pred, coffin), input)
	}
}

func TestEval_Sentinel(t *testing.T) {
	cards, catalog := testutil.LoadCorpus(t)
	projections := projection.Build(cards, catalog)

	pred, err := filter.Build(query.Clause{Field: query.Def, Op: query.Equal, Value: query.String("?")})
	require.NoError(t, err)

	var matched []int
	for i := range projections {
		if filter.Eval(pred, &projections[i]) {
			matched = append(matched, projections[i].ID)
		}
	}
	assert.Equal(t, []int{testutil.RaSphereMode}, matched)
}

func TestEval_UnknownPredicate(t *testing.T) {
	var p projection.Projection
	assert.False(t, filter.Eval(nil, &p))
	assert.False(t, filter.Eval(filter.AnyOf{}, &p))
}
