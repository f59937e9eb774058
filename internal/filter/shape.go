package filter

import "github.com/roach88/cardsearch/internal/query"

// Shape is the kind of value a field holds on a projection.
type Shape int

const (
	// ShapeNumber fields hold a query.Numerical.
	ShapeNumber Shape = iota
	// ShapeText fields hold a query.String matched by containment.
	ShapeText
	// ShapeExactSet fields hold a query.Multiple of strings matched by equality.
	ShapeExactSet
	// ShapePartialSet fields hold a query.MultiplePartial matched by containment.
	ShapePartialSet
)

// ShapeOf returns the shape of a field.
func ShapeOf(f query.Field) Shape {
	switch f {
	case query.Attribute, query.Type, query.Class, query.Set:
		return ShapeExactSet
	case query.Name:
		return ShapePartialSet
	case query.Text:
		return ShapeText
	default:
		return ShapeNumber
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeNumber:
		return "number"
	case ShapeText:
		return "text"
	case ShapeExactSet:
		return "exact set"
	case ShapePartialSet:
		return "partial set"
	default:
		return "unknown"
	}
}
