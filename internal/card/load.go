package card

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// cardInfo is the envelope of the upstream card document.
type cardInfo struct {
	Data []Card `json:"data"`
}

// DecodeCards reads an upstream card document ({"data": [...]}).
// Record order is preserved.
func DecodeCards(r io.Reader) ([]Card, error) {
	var info cardInfo
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return info.Data, nil
}

// DecodeSets reads an upstream release catalog document (a JSON array).
func DecodeSets(r io.Reader) ([]Set, error) {
	var sets []Set
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("decode sets: %w", err)
	}
	return sets, nil
}

// EncodeCards writes cards as an upstream card document.
func EncodeCards(w io.Writer, cards []Card) error {
	return json.NewEncoder(w).Encode(cardInfo{Data: cards})
}

// LoadCardsFile decodes the card document at path.
func LoadCardsFile(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cards: %w", err)
	}
	defer f.Close()
	return DecodeCards(f)
}

// LoadSetsFile decodes the release catalog document at path.
func LoadSetsFile(path string) ([]Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sets: %w", err)
	}
	defer f.Close()
	return DecodeSets(f)
}
