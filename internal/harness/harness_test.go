package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/logger"
	"github.com/roach88/cardsearch/internal/testutil"
)

func fixtureScenario(cases ...Case) *Scenario {
	return &Scenario{
		Name:        "inline",
		Description: "inline scenario",
		Cards:       testutil.FixturePath("cards.json"),
		Sets:        testutil.FixturePath("sets.json"),
		Cases:       cases,
	}
}

func TestScenarios(t *testing.T) {
	for _, name := range []string{"numeric_fields", "text_fields"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
			assert.Len(t, result.Cases, len(scenario.Cases))
		})
	}
}

func TestRun_ReportsMismatches(t *testing.T) {
	scenario := fixtureScenario(
		Case{Query: "atk>=2000", Expect: []int{testutil.DarkMagician}},
		Case{Query: "atk<=>1", Expect: []int{1}},
		Case{Query: "atk=1", Error: ErrorParse},
		Case{Query: "a:dark", Describe: "attribute is dark", Expect: []int{testutil.DarkMagician, testutil.Catastor, testutil.DecodeTalker}},
		Case{Query: "l=3", Expect: []int{testutil.DesLacooda}},
	)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "Expected: [46986414]")
	assert.Contains(t, result.Errors[0], "Actual: [46986414 26593852 1861629]")
	assert.Contains(t, result.Errors[1], "Actual: parse error")
	assert.Contains(t, result.Errors[2], "Expected: parse error")
	assert.Contains(t, result.Errors[2], "Actual: no matches")
	assert.Contains(t, result.Errors[3], `restatement "attribute is dark"`)

	require.Len(t, result.Cases, 5)
	assert.False(t, result.Cases[0].Pass)
	assert.True(t, result.Cases[4].Pass)
}

func TestRun_MissingCorpus(t *testing.T) {
	scenario := fixtureScenario(Case{Query: "atk=1"})
	scenario.Cards = "testdata/missing.json"

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load cards")
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	cases := []Case{
		{Query: "atk>=2000"},
		{Query: "c:spell"},
		{Query: "o:draw"},
	}
	sequential, err := Run(fixtureScenario(cases...))
	require.NoError(t, err)

	parallel := fixtureScenario(cases...)
	parallel.Workers = 4
	got, err := Run(parallel)
	require.NoError(t, err)

	for i := range cases {
		assert.Equal(t, sequential.Cases[i].IDs, got.Cases[i].IDs, cases[i].Query)
	}
}

func TestRunWithLogger_TagsQueryToken(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", logger.JSONLoggingFormat, &buf)

	scenario := fixtureScenario(Case{Query: "l=3", Expect: []int{testutil.DesLacooda}})
	scenario.QueryToken = "scenario-token"

	result, err := RunWithLogger(scenario, log)
	require.NoError(t, err)
	assert.True(t, result.Pass)

	out := buf.String()
	assert.Contains(t, out, `"query_token":"scenario-token"`)
	assert.Contains(t, out, `"message":"case evaluated"`)
	assert.Equal(t, 1, strings.Count(out, "case evaluated"))
}

func TestRestate(t *testing.T) {
	result := &Result{Cases: []CaseResult{
		{Query: "l=3", Description: "level/rank = 3", IDs: []int{1, 2}},
		{Query: "t=", Error: ErrorParse},
		{Query: "atk>9000", Description: "ATK > 9000"},
	}}

	want := "# demo\n" +
		"l=3\n  level/rank = 3\n  [1 2]\n" +
		"t=\n  parse error\n" +
		"atk>9000\n  ATK > 9000\n  no matches\n"
	assert.Equal(t, want, string(Restate("demo", result)))
}
