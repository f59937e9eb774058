package filter

import (
	"strconv"

	"github.com/roach88/cardsearch/internal/query"
)

// Build compiles a clause into a predicate.
//
// Build looks only at the clause, never at the corpus. It rejects, with a
// CompileError:
//   - ordering operators against text and set fields
//   - text or regex values against numeric fields, except the "?" marker
//   - the "?" marker against fields that have no unknown stat, or with an
//     ordering operator
//   - values a parser never produces (nested alternatives, partial sets, Absent)
func Build(c query.Clause) (Predicate, error) {
	return build(c, c.Value, false)
}

func build(c query.Clause, v query.Value, nested bool) (Predicate, error) {
	if alts, ok := v.(query.Multiple); ok {
		if nested {
			return nil, newCompileError(c, "nested alternatives are not supported")
		}
		if len(alts) == 0 {
			return nil, newCompileError(c, "no alternatives")
		}
		preds := make([]Predicate, len(alts))
		for i, alt := range alts {
			p, err := build(c, alt, true)
			if err != nil {
				return nil, err
			}
			preds[i] = p
		}
		return AnyOf{Alternatives: preds}, nil
	}

	if ShapeOf(c.Field) == ShapeNumber {
		return buildNumeric(c, v)
	}
	return buildText(c, v)
}

func buildNumeric(c query.Clause, v query.Value) (Predicate, error) {
	switch val := v.(type) {
	case query.Numerical:
		return NumericCompare{Field: c.Field, Op: c.Op, N: int(val)}, nil
	case query.String:
		if val != query.SentinelMarker {
			return nil, newCompileError(c, "%s expects a number", c.Field.Display())
		}
		if !c.Field.HasSentinel() {
			return nil, newCompileError(c, "%s has no unknown value", c.Field.Display())
		}
		// Ordering against "?" is undefined and matches nothing.
		return SentinelCompare{Field: c.Field, Op: c.Op}, nil
	case query.Regex:
		return nil, newCompileError(c, "%s cannot be matched with a regex", c.Field.Display())
	default:
		return nil, newCompileError(c, "unsupported value %T", v)
	}
}

func buildText(c query.Clause, v query.Value) (Predicate, error) {
	if c.Op.IsOrdering() {
		return nil, newCompileError(c, "%s can only be compared with = or !=", c.Field.Display())
	}
	negate := c.Op == query.NotEqual

	var needle string
	switch val := v.(type) {
	case query.String:
		needle = string(val)
	case query.Numerical:
		needle = strconv.Itoa(int(val))
	case query.Regex:
		return RegexMatch{Field: c.Field, Negate: negate, Re: val}, nil
	default:
		return nil, newCompileError(c, "unsupported value %T", v)
	}

	switch shape := ShapeOf(c.Field); shape {
	case ShapeText:
		return TextMatch{Field: c.Field, Negate: negate, Needle: needle}, nil
	default:
		return SetMatch{Field: c.Field, Negate: negate, Needle: needle, Partial: shape == ShapePartialSet}, nil
	}
}
