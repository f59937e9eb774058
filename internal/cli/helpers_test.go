package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/config"
	"github.com/roach88/cardsearch/internal/testutil"
)

// fixtureOptions points the commands at the shared test corpus with
// default settings and logging switched off.
func fixtureOptions(format string) *RootOptions {
	cfg := config.Default()
	cfg.Logging.Level = "disabled"
	return &RootOptions{
		Format:    format,
		CardsPath: testutil.FixturePath("cards.json"),
		SetsPath:  testutil.FixturePath("sets.json"),
		Config:    cfg,
	}
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
