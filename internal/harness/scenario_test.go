package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/numeric_fields.yaml")
	require.NoError(t, err)

	assert.Equal(t, "numeric_fields", scenario.Name)
	assert.Equal(t, "numeric-fields", scenario.QueryToken)
	assert.Equal(t, filepath.Join("testdata", "scenarios", "../../../testutil/testdata/cards.json"), scenario.Cards)
	require.NotEmpty(t, scenario.Cases)
	assert.Equal(t, "l=3", scenario.Cases[0].Query)
	assert.Equal(t, []int{2326738}, scenario.Cases[0].Expect)
}

func TestLoadScenario_AbsolutePathsKept(t *testing.T) {
	path := writeScenario(t, `
name: abs
description: absolute corpus paths
cards: /data/cards.json
sets: /data/sets.json
cases:
  - query: "atk=1"
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/cards.json", scenario.Cards)
	assert.Equal(t, "/data/sets.json", scenario.Sets)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: misspelled key
cards: cards.json
sets: sets.json
case:
  - query: "atk=1"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\ncards: c.json\nsets: s.json\ncases:\n  - query: x\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\ncards: c.json\nsets: s.json\ncases:\n  - query: x\n",
			wantErr: "description is required",
		},
		{
			name:    "missing cards",
			content: "name: n\ndescription: d\nsets: s.json\ncases:\n  - query: x\n",
			wantErr: "cards path is required",
		},
		{
			name:    "missing sets",
			content: "name: n\ndescription: d\ncards: c.json\ncases:\n  - query: x\n",
			wantErr: "sets path is required",
		},
		{
			name:    "no cases",
			content: "name: n\ndescription: d\ncards: c.json\nsets: s.json\n",
			wantErr: "cases list is required",
		},
		{
			name:    "negative workers",
			content: "name: n\ndescription: d\ncards: c.json\nsets: s.json\nworkers: -1\ncases:\n  - query: x\n",
			wantErr: "workers must not be negative",
		},
		{
			name:    "unknown error kind",
			content: "name: n\ndescription: d\ncards: c.json\nsets: s.json\ncases:\n  - query: x\n    error: syntax\n",
			wantErr: `unknown error kind "syntax"`,
		},
		{
			name:    "expect with error",
			content: "name: n\ndescription: d\ncards: c.json\nsets: s.json\ncases:\n  - query: x\n    error: parse\n    expect: [1]\n",
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
