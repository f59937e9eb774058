package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/app"
	"github.com/roach88/cardsearch/internal/testutil"
)

func newTestSearchOptions(rootOpts *RootOptions) *SearchOptions {
	return &SearchOptions{
		RootOptions: rootOpts,
		appOpts:     []app.Option{app.WithTokenGenerator(testutil.NewFixedTokenGenerator("search-token"))},
	}
}

func TestSearchCommand_GoldenText(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"search_atk", []string{"atk>=2000"}},
		{"search_kinds", []string{"c:xyz", "l=7"}},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			out, _, err := execute(NewSearchCommand(fixtureOptions("text")), tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.golden, []byte(out))
		})
	}
}

func TestSearchCommand_Paging(t *testing.T) {
	out, _, err := execute(NewSearchCommand(fixtureOptions("text")), "a:dark", "--limit", "1", "--offset", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"Showing 1 of 3 results where attribute is \"dark\"\n\n26593852   Ally of Justice Catastor (Synchro Monster)\n",
		out)
}

func TestSearchCommand_NoMatches(t *testing.T) {
	out, _, err := execute(NewSearchCommand(fixtureOptions("text")), "t=dragon")
	require.NoError(t, err)
	assert.Equal(t, "Showing 0 of 0 results where type is \"dragon\"\n", out)
}

func TestSearchCommand_JSON(t *testing.T) {
	out, _, err := execute(newSearchCommand(newTestSearchOptions(fixtureOptions("json"))), "c:spell")
	require.NoError(t, err)

	var resp struct {
		Status     string       `json:"status"`
		QueryToken string       `json:"query_token"`
		Data       app.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "search-token", resp.QueryToken)
	assert.Equal(t, "search-token", resp.Data.Token)
	assert.Equal(t, `card type is "spell"`, resp.Data.Description)
	assert.Equal(t, 2, resp.Data.Total)
	require.Len(t, resp.Data.Cards, 2)
	assert.Equal(t, testutil.CheerfulCoffin, resp.Data.Cards[0].ID)
	assert.Equal(t, testutil.PotOfGreed, resp.Data.Cards[1].ID)
}

func TestSearchCommand_ParseError(t *testing.T) {
	out, _, err := execute(NewSearchCommand(fixtureOptions("json")), "atk<=>1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParse, resp.Error.Code)
	assert.Equal(t, map[string]any{"fragment": "atk<=>1"}, resp.Error.Details)
}

func TestSearchCommand_CompileError(t *testing.T) {
	out, _, err := execute(NewSearchCommand(fixtureOptions("text")), "t>dragon")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E102]:")
}

func TestSearchCommand_MissingCorpus(t *testing.T) {
	opts := fixtureOptions("text")
	opts.CardsPath = filepath.Join(t.TempDir(), "missing.json")

	out, _, err := execute(NewSearchCommand(opts), "atk=1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]:")
	assert.Contains(t, out, "corpus file not found")
}

func TestSearchCommand_NegativeLimit(t *testing.T) {
	out, _, err := execute(NewSearchCommand(fixtureOptions("text")), "atk=1", "--limit", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E104]:")
}

func TestSearchCommand_Metrics(t *testing.T) {
	_, errOut, err := execute(NewSearchCommand(fixtureOptions("text")), "atk>=2000", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, errOut, `cardsearch_searches_total{outcome="ok"} 1`)
	assert.Contains(t, errOut, "cardsearch_corpus_records 8")
}

func TestSearchCommand_MissingArgs(t *testing.T) {
	_, _, err := execute(NewSearchCommand(fixtureOptions("text")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestSearchCommand_FromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cards.db")
	importOpts := fixtureOptions("text")
	importOpts.DBPath = dbPath
	_, _, err := execute(NewImportCommand(importOpts))
	require.NoError(t, err)

	opts := fixtureOptions("text")
	opts.CardsPath = "/nonexistent/cards.json"
	opts.DBPath = dbPath
	out, _, err := execute(NewSearchCommand(opts), "atk>=2000")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "search_atk", []byte(out))
}
