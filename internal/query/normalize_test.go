package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SortsByCost(t *testing.T) {
	clauses, err := Parse("o:draw name=pot t:spellcaster atk>100 l=4")
	require.NoError(t, err)

	got := Normalize(clauses)

	fields := make([]Field, len(got))
	for i, c := range got {
		fields[i] = c.Field
	}
	assert.Equal(t, []Field{Atk, Level, Type, Name, Text}, fields)
}

func TestNormalize_CoalescesNameWords(t *testing.T) {
	clauses, err := Parse("ally atk>1 of justice")
	require.NoError(t, err)

	got := Normalize(clauses)

	assert.Equal(t, []Clause{
		{Atk, Greater, Numerical(1)},
		NameClause("ally of justice"),
	}, got)
}

func TestNormalize_KeepsStructuredNameClauses(t *testing.T) {
	clauses, err := Parse("dark name!=magician name=/gia/ dragon")
	require.NoError(t, err)

	got := Normalize(clauses)

	// Only adjacent (Name, Equal, String) clauses merge.
	assert.Equal(t, []Clause{
		NameClause("dark"),
		{Name, NotEqual, String("magician")},
		{Name, Equal, MustRegex("gia")},
		NameClause("dragon"),
	}, got)
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	clauses, err := Parse("dark atk>1 magician")
	require.NoError(t, err)
	before := append([]Clause(nil), clauses...)

	_ = Normalize(clauses)

	assert.Equal(t, before, clauses)
}

func TestNormalize_Idempotent(t *testing.T) {
	clauses, err := Parse("o:draw blue eyes t:dragon white atk>=3000")
	require.NoError(t, err)

	once := Normalize(clauses)
	assert.Equal(t, once, Normalize(once))
}
