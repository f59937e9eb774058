package filter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/cardsearch/internal/query"
)

// Match compares a card's field value with a query value under op.
//
//   - An Absent field value never matches, for every operator.
//   - A Multiple query value matches if any alternative matches.
//   - Numbers compare numerically. A number against the "?" marker tests for
//     the sentinel; ordering operators against "?" never match.
//   - Text compares by containment, exact sets by element equality, partial
//     sets by element containment. Only Equal and NotEqual are defined for
//     text; NotEqual means no element matches. A number against text is
//     matched by its decimal spelling.
//   - A regex matches text or any element of a set.
func Match(op query.Operator, fieldValue, queryValue query.Value) bool {
	if _, absent := fieldValue.(query.Absent); absent {
		return false
	}
	if alts, ok := queryValue.(query.Multiple); ok {
		for _, alt := range alts {
			if Match(op, fieldValue, alt) {
				return true
			}
		}
		return false
	}

	switch fv := fieldValue.(type) {
	case query.Numerical:
		switch qv := queryValue.(type) {
		case query.Numerical:
			return compare(op, int(fv), int(qv))
		case query.String:
			return qv == query.SentinelMarker && matchSentinel(op, int(fv))
		default:
			return false
		}
	case query.String:
		return matchElements(op, []string{string(fv)}, queryValue, strings.Contains)
	case query.Multiple:
		elems, _ := setElements(fv)
		return matchElements(op, elems, queryValue, func(e, needle string) bool { return e == needle })
	case query.MultiplePartial:
		return matchElements(op, fv, queryValue, strings.Contains)
	default:
		return false
	}
}

// matchElements applies a textual query value to the elements of a field.
// test decides whether one element matches a literal needle.
func matchElements(op query.Operator, elems []string, queryValue query.Value, test func(elem, needle string) bool) bool {
	var hit func(string) bool
	switch qv := queryValue.(type) {
	case query.String:
		hit = func(e string) bool { return test(e, string(qv)) }
	case query.Numerical:
		needle := strconv.Itoa(int(qv))
		hit = func(e string) bool { return test(e, needle) }
	case query.Regex:
		hit = qv.MatchString
	default:
		return false
	}

	found := slices.ContainsFunc(elems, hit)
	switch op {
	case query.Equal:
		return found
	case query.NotEqual:
		return !found
	default:
		return false
	}
}
