package card

import "strings"

// Card is one card record as published by the upstream card database.
type Card struct {
	ID          int          `json:"id"`
	Type        string       `json:"type"`            // "XYZ Pendulum Effect Monster", "Spell Card"
	Kinds       []string     `json:"kinds,omitempty"` // structured form of Type, preferred when present
	Name        string       `json:"name"`
	Desc        string       `json:"desc"`
	Atk         *int         `json:"atk,omitempty"` // -1 = "?"
	Def         *int         `json:"def,omitempty"` // -1 = "?"
	Attribute   string       `json:"attribute,omitempty"`
	Race        string       `json:"race"`
	Level       *int         `json:"level,omitempty"` // also carries rank
	LinkVal     *int         `json:"linkval,omitempty"`
	LinkMarkers []string     `json:"linkmarkers,omitempty"`
	CardSets    []CardSet    `json:"card_sets,omitempty"`
	BanlistInfo *BanlistInfo `json:"banlist_info,omitempty"`
	CardPrices  []CardPrice  `json:"card_prices,omitempty"`
	MiscInfo    []MiscInfo   `json:"misc_info,omitempty"`
}

// CardSet is one printing of a card.
type CardSet struct {
	SetName   string `json:"set_name"`
	SetCode   string `json:"set_code"` // "AP03-EN018"
	SetRarity string `json:"set_rarity"`
	SetPrice  string `json:"set_price,omitempty"`
}

// CodePrefix returns the set part of the printing code ("AP03" for "AP03-EN018").
func (s CardSet) CodePrefix() string {
	prefix, _, _ := strings.Cut(s.SetCode, "-")
	return prefix
}

// BanStatus is the TCG restriction of a card.
type BanStatus string

const (
	Banned      BanStatus = "Banned"
	Limited     BanStatus = "Limited"
	SemiLimited BanStatus = "Semi-Limited"
	Unlimited   BanStatus = ""
)

// UnlimitedCopies is the number of copies allowed without a restriction record.
const UnlimitedCopies = 3

// Copies returns how many copies of a card with this status may be played.
func (s BanStatus) Copies() int {
	switch s {
	case Banned:
		return 0
	case Limited:
		return 1
	case SemiLimited:
		return 2
	default:
		return UnlimitedCopies
	}
}

// BanlistInfo is the restriction record of a card. Absent for unrestricted cards.
type BanlistInfo struct {
	BanTCG BanStatus `json:"ban_tcg,omitempty"`
	BanOCG BanStatus `json:"ban_ocg,omitempty"`
}

// CardPrice is one price-list entry. Prices are decimal strings in the
// currency of the respective vendor.
type CardPrice struct {
	Cardmarket   string `json:"cardmarket_price,omitempty"`
	TCGPlayer    string `json:"tcgplayer_price,omitempty"`
	Ebay         string `json:"ebay_price,omitempty"`
	Amazon       string `json:"amazon_price,omitempty"`
	CoolStuffInc string `json:"coolstuffinc_price,omitempty"`
}

// All returns every tracked price string of the entry, empty ones included.
func (p CardPrice) All() []string {
	return []string{p.Cardmarket, p.TCGPlayer, p.Ebay, p.Amazon, p.CoolStuffInc}
}

// MiscInfo carries auxiliary data about a card.
type MiscInfo struct {
	BetaName      string `json:"beta_name,omitempty"`
	TreatedAs     string `json:"treated_as,omitempty"`
	GenesysPoints *int   `json:"genesys_points,omitempty"`
}
