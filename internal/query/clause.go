package query

import "fmt"

// Clause is one field-operator-value triple of a query.
type Clause struct {
	Field Field
	Op    Operator
	Value Value
}

// NameClause returns the clause a bare word stands for.
func NameClause(word string) Clause {
	return Clause{Field: Name, Op: Equal, Value: String(word)}
}

// String renders the clause for query restatements, e.g. `ATK >= 100` or
// `name is "dark magician"`.
func (c Clause) String() string {
	if c.Field.IsNumeric() {
		return fmt.Sprintf("%s %s %s", c.Field.Display(), c.Op, FormatValue(c.Value, true))
	}
	return fmt.Sprintf("%s %s %s", c.Field.Display(), c.verb(), FormatValue(c.Value, false))
}

// verb spells the operator of a text clause.
func (c Clause) verb() string {
	_, isRegex := c.Value.(Regex)
	switch {
	case c.Op == Equal && isRegex:
		return "matches"
	case c.Op == NotEqual && isRegex:
		return "does not match"
	case c.Op == Equal:
		return "is"
	case c.Op == NotEqual:
		return "is not"
	default:
		return c.Op.String()
	}
}

// isNameWord reports whether the clause is a plain name substring search.
func (c Clause) isNameWord() bool {
	if c.Field != Name || c.Op != Equal {
		return false
	}
	_, ok := c.Value.(String)
	return ok
}
