package engine

import (
	"fmt"
	"strings"

	"github.com/roach88/cardsearch/internal/filter"
	"github.com/roach88/cardsearch/internal/projection"
	"github.com/roach88/cardsearch/internal/query"
)

// Query is a compiled query.
//
// Clauses and Predicates are parallel: Predicates[i] is compiled from
// Clauses[i]. Both are in evaluation order.
type Query struct {
	Raw        string
	Clauses    []query.Clause
	Predicates []filter.Predicate
}

// Compile parses, normalizes and compiles a query string.
//
// Errors are *query.ParseError or *filter.CompileError. Compile never touches
// the corpus.
func Compile(raw string) (*Query, error) {
	clauses, err := query.Parse(raw)
	if err != nil {
		return nil, err
	}
	clauses = query.Normalize(clauses)

	preds := make([]filter.Predicate, len(clauses))
	for i, c := range clauses {
		pred, err := filter.Build(c)
		if err != nil {
			return nil, err
		}
		preds[i] = pred
	}

	return &Query{Raw: raw, Clauses: clauses, Predicates: preds}, nil
}

// Matches reports whether every predicate holds for p.
func (q *Query) Matches(p *projection.Projection) bool {
	for _, pred := range q.Predicates {
		if !filter.Eval(pred, p) {
			return false
		}
	}
	return true
}

// Describe restates the query in words, e.g.
// `ATK >= 100 and name is "dark magician"`.
func (q *Query) Describe() string {
	parts := make([]string, len(q.Clauses))
	for i, c := range q.Clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " and ")
}

// Explain lists each clause with the predicate compiled from it, one per line.
func (q *Query) Explain() []string {
	lines := make([]string, len(q.Clauses))
	for i, c := range q.Clauses {
		lines[i] = fmt.Sprintf("%s => %s", c, DescribePredicate(q.Predicates[i]))
	}
	return lines
}

// DescribePredicate renders a predicate for diagnostics.
func DescribePredicate(pred filter.Predicate) string {
	switch p := pred.(type) {
	case filter.NumericCompare:
		return fmt.Sprintf("numeric(%s %s %d)", p.Field, p.Op, p.N)
	case filter.SentinelCompare:
		return fmt.Sprintf("sentinel(%s %s %s)", p.Field, p.Op, query.SentinelMarker)
	case filter.TextMatch:
		return fmt.Sprintf("text(%s %s %q)", p.Field, negation(p.Negate, "contains"), p.Needle)
	case filter.SetMatch:
		verb := "has"
		if p.Partial {
			verb = "has-containing"
		}
		return fmt.Sprintf("set(%s %s %q)", p.Field, negation(p.Negate, verb), p.Needle)
	case filter.RegexMatch:
		return fmt.Sprintf("regex(%s %s /%s/)", p.Field, negation(p.Negate, "matches"), p.Re.Source)
	case filter.AnyOf:
		alts := make([]string, len(p.Alternatives))
		for i, alt := range p.Alternatives {
			alts[i] = DescribePredicate(alt)
		}
		return "any(" + strings.Join(alts, ", ") + ")"
	default:
		return fmt.Sprintf("unknown(%T)", pred)
	}
}

func negation(negate bool, verb string) string {
	if negate {
		return "not-" + verb
	}
	return verb
}
