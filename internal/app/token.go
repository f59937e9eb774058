package app

import "github.com/google/uuid"

// TokenGenerator generates unique query tokens for log correlation.
// Implemented by UUIDv7Generator (production) and
// testutil.FixedTokenGenerator (tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 query tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so tokens in a log
// sort by the time their query arrived.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
