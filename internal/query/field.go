package query

import (
	"fmt"
	"strings"
)

// Field identifies a searchable property of a card.
//
// Fields are declared in cost order: cheap numeric comparisons first,
// free-text scans last. Normalize relies on this order.
type Field int

const (
	Atk Field = iota
	Def
	Level
	LinkRating
	Legal
	Genesys
	Year
	Price
	Attribute
	Type
	Class
	Set
	Name
	Text
)

type fieldInfo struct {
	name     string
	display  string
	numeric  bool
	sentinel bool // accepts the SentinelMarker as a value
}

var fieldInfos = [...]fieldInfo{
	Atk:        {name: "atk", display: "ATK", numeric: true, sentinel: true},
	Def:        {name: "def", display: "DEF", numeric: true, sentinel: true},
	Level:      {name: "level", display: "level/rank", numeric: true},
	LinkRating: {name: "link", display: "link rating", numeric: true},
	Legal:      {name: "legal", display: "copies allowed", numeric: true},
	Genesys:    {name: "genesys", display: "genesys points", numeric: true},
	Year:       {name: "year", display: "year", numeric: true},
	Price:      {name: "price", display: "price", numeric: true},
	Attribute:  {name: "attribute", display: "attribute"},
	Type:       {name: "type", display: "type"},
	Class:      {name: "class", display: "card type"},
	Set:        {name: "set", display: "set"},
	Name:       {name: "name", display: "name"},
	Text:       {name: "text", display: "text"},
}

// NumFields is the number of fields.
const NumFields = len(fieldInfos)

// fieldAliases maps every accepted lowercased spelling to its field.
var fieldAliases = map[string]Field{
	"atk":        Atk,
	"def":        Def,
	"level":      Level,
	"l":          Level,
	"rank":       Level,
	"r":          Level,
	"link":       LinkRating,
	"linkrating": LinkRating,
	"lr":         LinkRating,
	"legal":      Legal,
	"copies":     Legal,
	"genesys":    Genesys,
	"g":          Genesys,
	"year":       Year,
	"y":          Year,
	"price":      Price,
	"p":          Price,
	"attribute":  Attribute,
	"attr":       Attribute,
	"a":          Attribute,
	"type":       Type,
	"t":          Type,
	"race":       Type,
	"class":      Class,
	"c":          Class,
	"set":        Set,
	"s":          Set,
	"name":       Name,
	"n":          Name,
	"text":       Text,
	"o":          Text,
	"eff":        Text,
	"effect":     Text,
	"e":          Text,
	"desc":       Text,
}

// ParseField resolves a field name or alias, ignoring case.
func ParseField(s string) (Field, error) {
	f, ok := fieldAliases[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown field %q", s)
	}
	return f, nil
}

// Fields returns all fields in cost order.
func Fields() []Field {
	fields := make([]Field, len(fieldInfos))
	for i := range fieldInfos {
		fields[i] = Field(i)
	}
	return fields
}

// CostRank orders fields for evaluation. Lower ranks are cheaper to test.
func (f Field) CostRank() int {
	return int(f)
}

// IsNumeric reports whether the field holds a number on cards it applies to.
func (f Field) IsNumeric() bool {
	return f.valid() && fieldInfos[f].numeric
}

// HasSentinel reports whether the field accepts SentinelMarker as a value.
func (f Field) HasSentinel() bool {
	return f.valid() && fieldInfos[f].sentinel
}

// Display returns the human-readable name used in query restatements.
func (f Field) Display() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfos[f].display
}

// String returns the canonical field name.
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfos[f].name
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < len(fieldInfos)
}
