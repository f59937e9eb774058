package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the upstream date format of the release catalog.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// Set is one entry of the release catalog.
type Set struct {
	Name    string `json:"set_name"`
	Code    string `json:"set_code,omitempty"`
	TCGDate Date   `json:"tcg_date"`
}

// Catalog indexes release dates by lowercased set name.
//
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	byName map[string]Set
}

// NewCatalog builds a catalog from sets. Later duplicates win.
func NewCatalog(sets []Set) Catalog {
	byName := make(map[string]Set, len(sets))
	for _, s := range sets {
		byName[strings.ToLower(s.Name)] = s
	}
	return Catalog{byName: byName}
}

// ReleaseDate returns the TCG release date of the named set.
// Unknown sets and sets without a date report false.
func (c Catalog) ReleaseDate(setName string) (time.Time, bool) {
	s, ok := c.byName[strings.ToLower(setName)]
	if !ok || s.TCGDate.IsZero() {
		return time.Time{}, false
	}
	return s.TCGDate.Time, true
}

// Len returns the number of sets in the catalog.
func (c Catalog) Len() int {
	return len(c.byName)
}

// Sets returns all sets ordered by lowercased name.
func (c Catalog) Sets() []Set {
	keys := make([]string, 0, len(c.byName))
	for k := range c.byName {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	sets := make([]Set, len(keys))
	for i, k := range keys {
		sets[i] = c.byName[k]
	}
	return sets
}
