package filter

import (
	"errors"
	"fmt"

	"github.com/roach88/cardsearch/internal/query"
)

// CompileError reports a clause that parses but has no defined meaning,
// such as an ordering operator against a text field.
type CompileError struct {
	// Clause is the offending clause.
	Clause query.Clause

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Clause)
}

// IsCompileError returns true if err is or wraps a CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

func newCompileError(c query.Clause, format string, args ...any) *CompileError {
	return &CompileError{Clause: c, Message: fmt.Sprintf(format, args...)}
}
