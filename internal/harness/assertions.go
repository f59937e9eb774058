package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError describes a case whose outcome differs from its expectation.
type AssertionError struct {
	Index    int
	Query    string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "case %d %q failed\n", e.Index+1, e.Query)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// checkCase compares an observed outcome against the case expectation.
// It returns nil when they agree.
func checkCase(index int, c Case, got CaseResult) *AssertionError {
	fail := func(expected, actual string) *AssertionError {
		return &AssertionError{Index: index, Query: c.Query, Expected: expected, Actual: actual}
	}

	if c.Error != "" {
		if got.Error != c.Error {
			return fail(c.Error+" error", describeOutcome(got))
		}
		return nil
	}

	if got.Error != "" {
		return fail(formatIDs(c.Expect), describeOutcome(got))
	}
	if !slices.Equal(c.Expect, got.IDs) {
		return fail(formatIDs(c.Expect), formatIDs(got.IDs))
	}
	if c.Describe != "" && c.Describe != got.Description {
		return fail(fmt.Sprintf("restatement %q", c.Describe), fmt.Sprintf("restatement %q", got.Description))
	}
	return nil
}

func describeOutcome(got CaseResult) string {
	if got.Error != "" {
		return fmt.Sprintf("%s error (%s)", got.Error, got.Message)
	}
	return formatIDs(got.IDs)
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "no matches"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
