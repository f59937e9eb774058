package cli

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/testutil"
)

func TestCardCommand_GoldenText(t *testing.T) {
	tests := []struct {
		golden string
		id     int
	}{
		{"card_pot_of_greed", testutil.PotOfGreed},
		{"card_ra_sphere_mode", testutil.RaSphereMode},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			out, _, err := execute(NewCardCommand(fixtureOptions("text")), strconv.Itoa(tt.id))
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.golden, []byte(out))
		})
	}
}

func TestCardCommand_JSON(t *testing.T) {
	out, _, err := execute(NewCardCommand(fixtureOptions("json")), strconv.Itoa(testutil.DecodeTalker))
	require.NoError(t, err)

	var resp struct {
		Status string   `json:"status"`
		Data   CardView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Decode Talker", resp.Data.Card.Name)

	values := map[string]string{}
	for _, fv := range resp.Data.Fields {
		values[fv.Field] = fv.Value
	}
	assert.Equal(t, "2300", values["ATK"])
	assert.Equal(t, "", values["DEF"], "link monsters have no DEF")
	assert.Equal(t, "", values["level/rank"])
	assert.Equal(t, "3", values["link rating"])
	assert.Equal(t, "1", values["copies allowed"])
	assert.Equal(t, "link, monster", values["card type"])
	assert.NotContains(t, values, "text")

	assert.Equal(t, []Printing{{
		Set:    "Starter Deck: Link Strike",
		Code:   "YS17-EN041",
		Rarity: "Ultra Rare",
		Date:   "2017-06-01",
	}}, resp.Data.Printings)
}

func TestPrintings_UnknownSetHasNoDate(t *testing.T) {
	_, catalog := testutil.LoadCorpus(t)
	c := card.Card{CardSets: []card.CardSet{
		{SetName: "legend of blue eyes white dragon", SetCode: "LOB-005", SetRarity: "Ultra Rare"},
		{SetName: "Speed Duel Tournament Pack 8", SetCode: "STP8-EN001", SetRarity: "Common"},
		{SetName: "Unreleased", SetCode: "XX-001", SetRarity: "Rare"},
	}}

	assert.Equal(t, []Printing{
		{Set: "legend of blue eyes white dragon", Code: "LOB-005", Rarity: "Ultra Rare", Date: "2002-03-08"},
		{Set: "Speed Duel Tournament Pack 8", Code: "STP8-EN001", Rarity: "Common"},
		{Set: "Unreleased", Code: "XX-001", Rarity: "Rare"},
	}, printings(c, catalog))
}

func TestCardCommand_NotFound(t *testing.T) {
	out, _, err := execute(NewCardCommand(fixtureOptions("text")), "12345")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E103]: card 12345 not found\n", out)
}

func TestCardCommand_InvalidID(t *testing.T) {
	out, _, err := execute(NewCardCommand(fixtureOptions("text")), "dark")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E104]:")
}
