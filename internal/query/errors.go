package query

import (
	"errors"
	"fmt"
)

// ParseError reports a grammar violation in a query string.
//
// Fragment is the offending part of the input, or empty when the problem is
// the query as a whole (e.g. an empty query).
type ParseError struct {
	Fragment string
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Fragment)
	}
	return e.Message
}

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func newParseError(fragment, format string, args ...any) *ParseError {
	return &ParseError{Fragment: fragment, Message: fmt.Sprintf(format, args...)}
}
