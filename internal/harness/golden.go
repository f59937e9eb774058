package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Restate renders a result as stable text: each query followed by its
// restatement and matching ids, or by the kind of error it raised.
func Restate(name string, result *Result) []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s\n", name)
	for _, c := range result.Cases {
		fmt.Fprintf(&buf, "%s\n", c.Query)
		if c.Error != "" {
			fmt.Fprintf(&buf, "  %s error\n", c.Error)
			continue
		}
		fmt.Fprintf(&buf, "  %s\n", c.Description)
		fmt.Fprintf(&buf, "  %s\n", formatIDs(c.IDs))
	}
	return []byte(buf.String())
}

// RunWithGolden runs a scenario and compares its restatement with
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Restate(name, result))
}
