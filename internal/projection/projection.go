package projection

import (
	"slices"
	"strings"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/query"
)

// Projection is the normalized, immutable view of one card.
type Projection struct {
	ID     int
	values [query.NumFields]query.Value
}

// New projects a card. The catalog supplies release dates for the year field.
func New(c card.Card, catalog card.Catalog) Projection {
	p := Projection{ID: c.ID}
	for i := range p.values {
		p.values[i] = query.Absent{}
	}

	kinds := KindTokens(c)
	monster := slices.Contains(kinds, "monster")
	link := slices.Contains(kinds, "link")

	if monster {
		p.set(query.Atk, stat(c.Atk))
		if !link {
			p.set(query.Def, stat(c.Def))
		}
	}
	if c.Level != nil && !link {
		p.set(query.Level, query.Numerical(*c.Level))
	}
	if c.LinkVal != nil && link {
		p.set(query.LinkRating, query.Numerical(*c.LinkVal))
	}

	p.set(query.Legal, query.Numerical(legalCopies(c)))
	p.set(query.Genesys, query.Numerical(genesysPoints(c)))
	if year, ok := firstReleaseYear(c, catalog); ok {
		p.set(query.Year, query.Numerical(year))
	}
	if cents, ok := MinPriceCents(c); ok {
		p.set(query.Price, query.Numerical(cents))
	}

	if c.Attribute != "" {
		p.set(query.Attribute, query.Multiple{query.String(query.Fold(c.Attribute))})
	}
	if c.Race != "" {
		p.set(query.Type, query.Multiple{query.String(query.Fold(c.Race))})
	}
	if len(kinds) > 0 {
		p.set(query.Class, stringSet(kinds))
	}
	if prefixes := setPrefixes(c); len(prefixes) > 0 {
		p.set(query.Set, stringSet(prefixes))
	}

	p.set(query.Name, query.MultiplePartial(nameVariants(c)))
	p.set(query.Text, query.String(query.Fold(c.Desc)))

	return p
}

// Build projects every card, preserving corpus order.
func Build(cards []card.Card, catalog card.Catalog) []Projection {
	out := make([]Projection, len(cards))
	for i, c := range cards {
		out[i] = New(c, catalog)
	}
	return out
}

// Value returns the card's value for a field. It is total: fields that do not
// apply to the card, and unknown fields, are query.Absent.
func (p *Projection) Value(f query.Field) query.Value {
	if f < 0 || int(f) >= len(p.values) || p.values[f] == nil {
		return query.Absent{}
	}
	return p.values[f]
}

func (p *Projection) set(f query.Field, v query.Value) {
	p.values[f] = v
}

// KindTokens returns the folded, deduplicated type tokens of a card
// ("xyz", "effect", "monster"). The structured kinds list is used when
// present, otherwise the words of the descriptive type phrase.
func KindTokens(c card.Card) []string {
	raw := c.Kinds
	if len(raw) == 0 {
		raw = strings.Fields(c.Type)
	}
	return dedupe(raw)
}

// stat maps a nullable monster stat. Missing and -1 both mean "?".
func stat(v *int) query.Value {
	if v == nil || *v == query.Sentinel {
		return query.Numerical(query.Sentinel)
	}
	return query.Numerical(*v)
}

func legalCopies(c card.Card) int {
	if c.BanlistInfo == nil {
		return card.UnlimitedCopies
	}
	return c.BanlistInfo.BanTCG.Copies()
}

func genesysPoints(c card.Card) int {
	for _, m := range c.MiscInfo {
		if m.GenesysPoints != nil {
			return *m.GenesysPoints
		}
	}
	return 0
}

// firstReleaseYear returns the earliest release year over the card's
// printings. Printings whose set is missing from the catalog are skipped.
func firstReleaseYear(c card.Card, catalog card.Catalog) (int, bool) {
	year, found := 0, false
	for _, printing := range c.CardSets {
		date, ok := catalog.ReleaseDate(printing.SetName)
		if !ok {
			continue
		}
		if !found || date.Year() < year {
			year, found = date.Year(), true
		}
	}
	return year, found
}

func setPrefixes(c card.Card) []string {
	prefixes := make([]string, 0, len(c.CardSets))
	for _, printing := range c.CardSets {
		prefixes = append(prefixes, printing.CodePrefix())
	}
	return dedupe(prefixes)
}

// nameVariants returns the current name followed by the beta and
// treated-as names, folded and deduplicated.
func nameVariants(c card.Card) []string {
	names := []string{c.Name}
	for _, m := range c.MiscInfo {
		names = append(names, m.BetaName, m.TreatedAs)
	}
	return dedupe(names)
}

// dedupe folds each string and drops empties and repeats, keeping first
// occurrences in order.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = query.Fold(strings.TrimSpace(s))
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func stringSet(items []string) query.Multiple {
	m := make(query.Multiple, len(items))
	for i, s := range items {
		m[i] = query.String(s)
	}
	return m
}
