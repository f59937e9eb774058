package query

import "fmt"

// Operator compares a card's field value with a query value.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
)

// OperatorChars are the characters operators are spelled with. A bare word
// containing any of them is a malformed clause, not a name.
const OperatorChars = "=<>:!"

// MaxOperatorLen is the longest operator spelling.
const MaxOperatorLen = 2

var operatorTokens = map[string]Operator{
	"=":  Equal,
	"==": Equal,
	":":  Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	"=<": LessEqual,
	">":  Greater,
	">=": GreaterEqual,
	"=>": GreaterEqual,
}

// ParseOperator resolves an operator spelling.
func ParseOperator(s string) (Operator, error) {
	op, ok := operatorTokens[s]
	if !ok {
		return 0, fmt.Errorf("unknown operator %q", s)
	}
	return op, nil
}

// IsOrdering reports whether the operator needs ordered values.
func (o Operator) IsOrdering() bool {
	switch o {
	case Less, LessEqual, Greater, GreaterEqual:
		return true
	default:
		return false
	}
}

// String returns the canonical spelling.
func (o Operator) String() string {
	switch o {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case LessEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}
