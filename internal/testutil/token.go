package testutil

// FixedTokenGenerator generates the same query token every time.
//
// This keeps log lines and JSON responses byte-identical across runs, so
// they can be compared against golden files.
//
// Thread-safety: FixedTokenGenerator is stateless and safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a new fixed query token generator.
//
// If token is empty, Generate() returns "test-query-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-query-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
//
// Implements app.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
