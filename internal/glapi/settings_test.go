package glapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugordi/gladialore-admin/internal/model"
)

func rewardRows() []model.BattleReward {
	return []model.BattleReward{
		{Mode: "pve", LvlMin: 1, LvlMax: 10, WinXPMin: 5, WinXPMax: 10, DropTierMin: 1, DropTierMax: 3},
	}
}

func captureBody(t *testing.T, tokens TokenSource, reply string, body *[]byte) *Client {
	t.Helper()
	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*body = data
		w.Write([]byte(reply))
	}, tokens)
}

func TestReplaceBattleRewardsWrapsBareSlice(t *testing.T) {
	var body []byte
	client := captureBody(t, &fakeTokens{token: "t"}, `{"items":[]}`, &body)

	_, err := client.ReplaceBattleRewards(context.Background(), rewardRows())
	require.NoError(t, err)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &sent))
	require.Contains(t, sent, "items")

	var items []model.BattleReward
	require.NoError(t, json.Unmarshal(sent["items"], &items))
	require.Len(t, items, 1)
	assert.Equal(t, "pve", items[0].Mode)
}

func TestReplaceBattleRewardsPassesEnvelopeThrough(t *testing.T) {
	var fromSlice, fromEnvelope []byte

	client := captureBody(t, &fakeTokens{token: "t"}, `{"items":[]}`, &fromSlice)
	_, err := client.ReplaceBattleRewards(context.Background(), rewardRows())
	require.NoError(t, err)

	client = captureBody(t, &fakeTokens{token: "t"}, `{"items":[]}`, &fromEnvelope)
	_, err = client.ReplaceBattleRewards(context.Background(), model.BattleRewardEnvelope{Items: rewardRows()})
	require.NoError(t, err)

	// Both caller-side shapes hit the wire identically
	assert.JSONEq(t, string(fromSlice), string(fromEnvelope))
}

func TestReplaceBattleRewardsNilSendsEmptyItems(t *testing.T) {
	var body []byte
	client := captureBody(t, &fakeTokens{token: "t"}, `{"items":[]}`, &body)

	_, err := client.ReplaceBattleRewards(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(body))
}

func TestReplaceBattleRewardsReturnsSavedRows(t *testing.T) {
	reply := `{"items":[{"id":"r1","mode":"pve","lvl_min":1,"lvl_max":10}]}`
	var body []byte
	client := captureBody(t, &fakeTokens{token: "t"}, reply, &body)

	saved, err := client.ReplaceBattleRewards(context.Background(), rewardRows())
	require.NoError(t, err)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "r1", saved.Items[0].ID)
}

func TestSettingsSubsectionPatchesAreIndependent(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"ok":true}`))
	}, &fakeTokens{token: "t"})

	ctx := context.Background()
	require.NoError(t, client.UpdateAdminSettings(ctx, model.AdminSettings{PointsPerLevel: 5}))
	require.NoError(t, client.UpdateEnergySettings(ctx, model.EnergySettings{BattleCost: 10}))
	require.NoError(t, client.UpdatePvpSettings(ctx, model.PvpSettings{StealPctMin: 1, StealPctMax: 5}))

	assert.Equal(t, []string{
		"PATCH /admin/settings/admin",
		"PATCH /admin/settings/energy",
		"PATCH /admin/settings/pvp",
	}, paths)
}

func TestGetSettingsDecodesBundle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"admin":{"points_per_level":5},
			"energy":{"battle_cost":10},
			"pvp":{"steal_pct_min":1,"steal_pct_max":8},
			"battle_rewards":[{"id":"r1","mode":"pvp"}]
		}`))
	}, &fakeTokens{token: "t"})

	settings, err := client.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, settings.Admin.PointsPerLevel)
	assert.Equal(t, 10, settings.Energy.BattleCost)
	assert.Equal(t, 8, settings.Pvp.StealPctMax)
	require.Len(t, settings.BattleRewards, 1)
	assert.Equal(t, "pvp", settings.BattleRewards[0].Mode)
}
