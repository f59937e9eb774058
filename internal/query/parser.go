package query

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxClauses is the most clauses a single query may hold.
const MaxClauses = 32

// Parse splits a query string into clauses, in input order.
//
// Each whitespace separated token is first read as a structured
// field-operator-value triple. Tokens that do not start with a known field
// followed by a valid operator are read as a bare name word instead; a bare
// word containing operator characters is rejected, since it is almost
// certainly a mistyped triple ("atk<=>1", "l===10").
//
// Parse is a pure function: the same input always yields the same clauses or
// the same error.
func Parse(input string) ([]Clause, error) {
	p := &parser{input: []rune(input)}

	var clauses []Clause
	for {
		p.skipSpace()
		if p.atEnd() {
			break
		}
		if len(clauses) == MaxClauses {
			return nil, newParseError(p.rest(), "input was not fully parsed (max %d clauses), left over", MaxClauses)
		}
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}

	if len(clauses) == 0 {
		return nil, &ParseError{Message: "empty query"}
	}
	return clauses, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) parseClause() (Clause, error) {
	start := p.pos

	c, ok, err := p.parseTriple()
	if err != nil {
		return Clause{}, err
	}
	if ok {
		return c, nil
	}

	p.pos = start
	return p.parseBareWord()
}

// parseTriple reads `field operator value`. It reports ok=false without an
// error when the token does not start with a field and an operator, so the
// caller can fall back to a bare word. Once both are read the clause is
// committed and any problem with the value is an error.
func (p *parser) parseTriple() (Clause, bool, error) {
	start := p.pos

	field, err := ParseField(p.scanWhile(unicode.IsLetter))
	if err != nil {
		return Clause{}, false, nil
	}

	// The whole run of operator characters must form one operator, so that
	// "<=>" is rejected instead of being read as "<=" followed by ">...".
	spelled := p.scanWhile(isOperatorChar)
	if len([]rune(spelled)) > MaxOperatorLen {
		return Clause{}, false, nil
	}
	op, err := ParseOperator(spelled)
	if err != nil {
		return Clause{}, false, nil
	}

	value, err := p.parseValue(string(p.input[start:p.pos]))
	if err != nil {
		return Clause{}, false, err
	}
	return Clause{Field: field, Op: op, Value: value}, true, nil
}

// parseValue reads a clause value. Precedence: quoted span, regex literal,
// then a '|' separated list of bare sub-tokens. Regex detection comes before
// alternation so that '|' inside slashes is never split.
func (p *parser) parseValue(head string) (Value, error) {
	if p.atEnd() || unicode.IsSpace(p.peek()) {
		return nil, newParseError(head, "missing value after")
	}

	switch p.peek() {
	case '"':
		s, err := p.scanQuoted(head)
		if err != nil {
			return nil, err
		}
		return String(Fold(s)), nil
	case '/':
		return p.scanRegex(head)
	default:
		return p.scanAlternatives()
	}
}

// parseBareWord reads a token that is not a structured clause as a name search.
// A fully quoted token keeps its spaces: "dark magician".
func (p *parser) parseBareWord() (Clause, error) {
	if p.peek() == '"' {
		s, err := p.scanQuoted("")
		if err != nil {
			return Clause{}, err
		}
		return NameClause(Fold(s)), nil
	}

	word := p.scanWhile(isWordChar)
	if strings.ContainsAny(word, OperatorChars) {
		return Clause{}, newParseError(word, "invalid query")
	}
	return NameClause(Fold(word)), nil
}

// scanQuoted reads a double-quoted span. The content is taken verbatim; there
// is no escaping. The closing quote must end the token.
func (p *parser) scanQuoted(head string) (string, error) {
	start := p.pos
	end := -1
	for i := start + 1; i < len(p.input); i++ {
		if p.input[i] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return "", newParseError(head+string(p.input[start:]), "unterminated quoted value")
	}

	content := string(p.input[start+1 : end])
	p.pos = end + 1
	if !p.atTokenEnd() {
		p.pos = start
		return "", newParseError(head+p.scanWhile(isWordChar), "unexpected text after quoted value")
	}
	if content == "" {
		return "", newParseError(head+`""`, "empty value")
	}
	return content, nil
}

// scanRegex reads a /pattern/ literal. The pattern may contain spaces and
// slashes; it ends at the first slash that ends the token.
func (p *parser) scanRegex(head string) (Value, error) {
	start := p.pos
	end := -1
	for i := start + 1; i < len(p.input); i++ {
		if p.input[i] == '/' && (i+1 == len(p.input) || unicode.IsSpace(p.input[i+1])) {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, newParseError(head+string(p.input[start:]), "unterminated regex")
	}

	source := string(p.input[start+1 : end])
	p.pos = end + 1
	if source == "" {
		return nil, newParseError(head+"//", "empty value")
	}
	re, err := NewRegex(source)
	if err != nil {
		return nil, newParseError(head+"/"+source+"/", "invalid regex (%v)", err)
	}
	return re, nil
}

// scanAlternatives reads a bare token and splits it on '|'. Each sub-token is
// a Numerical if it parses as an integer and a lowercased String otherwise.
// A single sub-token is returned as is.
func (p *parser) scanAlternatives() (Value, error) {
	token := p.scanWhile(isWordChar)

	parts := strings.Split(token, "|")
	values := make(Multiple, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, newParseError(token, "empty alternative in")
		}
		if part[0] == '"' || part[0] == '/' {
			return nil, newParseError(token, "quoted and regex values cannot be alternated")
		}
		if n, err := strconv.Atoi(part); err == nil {
			values = append(values, Numerical(n))
			continue
		}
		values = append(values, String(Fold(part)))
	}

	if len(values) == 1 {
		return values[0], nil
	}
	return values, nil
}

func (p *parser) scanWhile(pred func(rune) bool) string {
	start := p.pos
	for p.pos < len(p.input) && pred(p.input[p.pos]) {
		p.pos++
	}
	return string(p.input[start:p.pos])
}

func (p *parser) skipSpace() {
	p.scanWhile(unicode.IsSpace)
}

func (p *parser) peek() rune {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) atTokenEnd() bool {
	return p.atEnd() || unicode.IsSpace(p.peek())
}

func (p *parser) rest() string {
	return string(p.input[p.pos:])
}

func isOperatorChar(r rune) bool {
	return strings.ContainsRune(OperatorChars, r)
}

func isWordChar(r rune) bool {
	return !unicode.IsSpace(r)
}
