package query

import (
	"cmp"
	"slices"
)

// Normalize returns the clauses in evaluation order.
//
// Clauses are stably sorted by field cost rank, cheapest first. Adjacent bare
// name searches are then merged into one space-joined phrase, so "ally of
// justice" becomes a single `name is "ally of justice"` clause rather than
// three independent substring tests.
//
// The input slice is not modified.
func Normalize(clauses []Clause) []Clause {
	sorted := slices.Clone(clauses)
	slices.SortStableFunc(sorted, func(a, b Clause) int {
		return cmp.Compare(a.Field.CostRank(), b.Field.CostRank())
	})

	out := make([]Clause, 0, len(sorted))
	for _, c := range sorted {
		if n := len(out); n > 0 && out[n-1].isNameWord() && c.isNameWord() {
			out[n-1].Value = out[n-1].Value.(String) + " " + c.Value.(String)
			continue
		}
		out = append(out, c)
	}
	return out
}
