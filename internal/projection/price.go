package projection

import (
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/cardsearch/internal/card"
)

// priceContext has enough precision for any realistic price string; the
// conversion to cents is exact.
var priceContext = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(20)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

var hundred = apd.New(100, 0)

// MinPriceCents returns the lowest vendor price of a card in integer cents.
// Unparsable and empty price strings are ignored; zero prices count.
// It reports false when no price parses.
func MinPriceCents(c card.Card) (int, bool) {
	lowest, found := 0, false
	for _, entry := range c.CardPrices {
		for _, s := range entry.All() {
			cents, ok := ParseCents(s)
			if !ok {
				continue
			}
			if !found || cents < lowest {
				lowest, found = cents, true
			}
		}
	}
	return lowest, found
}

// ParseCents converts a decimal price string ("4.10") to cents (410).
// Fractions of a cent are rounded half up. Negative, infinite and NaN
// values are rejected.
func ParseCents(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite || d.Negative {
		return 0, false
	}

	var cents apd.Decimal
	if _, err := priceContext.Mul(&cents, d, hundred); err != nil {
		return 0, false
	}
	if _, err := priceContext.RoundToIntegralValue(&cents, &cents); err != nil {
		return 0, false
	}
	n, err := cents.Int64()
	if err != nil {
		return 0, false
	}
	return int(n), true
}
