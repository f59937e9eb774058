package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Value is a sealed interface over the values a clause or a card field can hold.
// Only String, Numerical, Regex, Multiple, MultiplePartial and Absent implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// SentinelMarker is the query spelling of an unknown stat ("def=?").
const SentinelMarker = "?"

// Sentinel is the stored value of an unknown stat. It is a present number,
// distinct from Absent.
const Sentinel = -1

// String is lowercased text. Matching is by substring containment.
type String string

func (String) value() {}

// Numerical is an integer value.
type Numerical int

func (Numerical) value() {}

// Regex is a case-insensitive pattern. Source is kept for display.
type Regex struct {
	Source string
	re     *regexp.Regexp
}

func (Regex) value() {}

// NewRegex compiles a case-insensitive pattern.
func NewRegex(source string) (Regex, error) {
	re, err := regexp.Compile("(?i)" + source)
	if err != nil {
		return Regex{}, err
	}
	return Regex{Source: source, re: re}, nil
}

// MustRegex is like NewRegex but panics on invalid patterns.
func MustRegex(source string) Regex {
	r, err := NewRegex(source)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchString reports whether s contains a match of the pattern.
// The zero Regex matches nothing.
func (r Regex) MatchString(s string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(s)
}

// Multiple is an ordered list of values. As a card field it is matched
// element-wise by equality; as a query value any alternative may match.
type Multiple []Value

func (Multiple) value() {}

// MultiplePartial is an ordered list of strings matched element-wise by
// substring containment.
type MultiplePartial []string

func (MultiplePartial) value() {}

// Absent marks a field that does not apply to a card.
type Absent struct{}

func (Absent) value() {}

// FormatValue renders a value for query restatements.
// Strings are quoted unless bare is set.
func FormatValue(v Value, bare bool) string {
	switch val := v.(type) {
	case String:
		if bare {
			return string(val)
		}
		return strconv.Quote(string(val))
	case Numerical:
		return strconv.Itoa(int(val))
	case Regex:
		return "/" + val.Source + "/"
	case Multiple:
		parts := make([]string, len(val))
		for i, alt := range val {
			parts[i] = FormatValue(alt, bare)
		}
		return strings.Join(parts, " or ")
	case MultiplePartial:
		parts := make([]string, len(val))
		for i, s := range val {
			parts[i] = FormatValue(String(s), bare)
		}
		return strings.Join(parts, " or ")
	case Absent:
		return "nothing"
	default:
		return fmt.Sprintf("%v", v)
	}
}
