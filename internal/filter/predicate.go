package filter

import (
	"slices"
	"strings"

	"github.com/roach88/cardsearch/internal/projection"
	"github.com/roach88/cardsearch/internal/query"
)

// Predicate is a sealed interface over compiled clause tests.
// Only the types in this file implement it; Eval switches over all of them.
type Predicate interface {
	predicate() // Sealed - only these types implement it
}

// NumericCompare compares a numeric field with an integer.
type NumericCompare struct {
	Field query.Field
	Op    query.Operator
	N     int
}

func (NumericCompare) predicate() {}

// SentinelCompare tests a numeric field for the unknown-stat sentinel.
// Only Equal and NotEqual are meaningful; ordering operators never match.
type SentinelCompare struct {
	Field query.Field
	Op    query.Operator
}

func (SentinelCompare) predicate() {}

// TextMatch tests a text field for a substring.
type TextMatch struct {
	Field  query.Field
	Negate bool
	Needle string
}

func (TextMatch) predicate() {}

// SetMatch tests the elements of a set field. Exact sets compare elements by
// equality, partial sets by containment. Negate means no element matches.
type SetMatch struct {
	Field   query.Field
	Negate  bool
	Needle  string
	Partial bool
}

func (SetMatch) predicate() {}

// RegexMatch tests a text or set field against a pattern.
type RegexMatch struct {
	Field  query.Field
	Negate bool
	Re     query.Regex
}

func (RegexMatch) predicate() {}

// AnyOf matches when any alternative matches.
type AnyOf struct {
	Alternatives []Predicate
}

func (AnyOf) predicate() {}

// Eval reports whether the projection satisfies the predicate.
//
// A field that is Absent on the projection never matches, whatever the
// operator; in particular a negated test on an Absent field is false.
func Eval(pred Predicate, p *projection.Projection) bool {
	switch pr := pred.(type) {
	case NumericCompare:
		n, ok := p.Value(pr.Field).(query.Numerical)
		return ok && compare(pr.Op, int(n), pr.N)

	case SentinelCompare:
		n, ok := p.Value(pr.Field).(query.Numerical)
		return ok && matchSentinel(pr.Op, int(n))

	case TextMatch:
		s, ok := p.Value(pr.Field).(query.String)
		return ok && pr.Negate != strings.Contains(string(s), pr.Needle)

	case SetMatch:
		elems, ok := setElements(p.Value(pr.Field))
		if !ok {
			return false
		}
		var found bool
		if pr.Partial {
			found = slices.ContainsFunc(elems, func(e string) bool { return strings.Contains(e, pr.Needle) })
		} else {
			found = slices.Contains(elems, pr.Needle)
		}
		return pr.Negate != found

	case RegexMatch:
		elems, ok := textElements(p.Value(pr.Field))
		return ok && pr.Negate != slices.ContainsFunc(elems, pr.Re.MatchString)

	case AnyOf:
		for _, alt := range pr.Alternatives {
			if Eval(alt, p) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// compare applies an operator to two integers.
func compare(op query.Operator, a, b int) bool {
	switch op {
	case query.Equal:
		return a == b
	case query.NotEqual:
		return a != b
	case query.Less:
		return a < b
	case query.LessEqual:
		return a <= b
	case query.Greater:
		return a > b
	case query.GreaterEqual:
		return a >= b
	default:
		return false
	}
}

func matchSentinel(op query.Operator, n int) bool {
	switch op {
	case query.Equal:
		return n == query.Sentinel
	case query.NotEqual:
		return n != query.Sentinel
	default:
		return false
	}
}

// setElements returns the strings of a set-valued field.
func setElements(v query.Value) ([]string, bool) {
	switch val := v.(type) {
	case query.Multiple:
		elems := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(query.String); ok {
				elems = append(elems, string(s))
			}
		}
		return elems, true
	case query.MultiplePartial:
		return val, true
	default:
		return nil, false
	}
}

// textElements returns the strings of any text-valued field.
func textElements(v query.Value) ([]string, bool) {
	if s, ok := v.(query.String); ok {
		return []string{string(s)}, true
	}
	return setElements(v)
}
