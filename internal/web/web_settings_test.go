package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPageRendersBundle(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	rr := ts.get("/settings")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	val, _ := doc.Find("input[name='points_per_level']").Attr("value")
	assert.Equal(t, "5", val)
	val, _ = doc.Find("input[name='battle_cost']").Attr("value")
	assert.Equal(t, "10", val)
	assert.Equal(t, 1, doc.Find("tr.reward-row").Length())
}

func TestSettingsSubsectionPatch(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	form := url.Values{"battle_cost": {"12"}}
	rr := ts.post("/settings/energy", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.backend.sawRequest("PATCH /admin/settings/energy"))
	assert.Contains(t, string(ts.backend.body("PATCH /admin/settings/energy")), `"battle_cost":12`)
}

func TestRewardReplaceValidatesEveryRowFirst(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// Second row has lvl_min below 1, so the whole submission is rejected
	form := url.Values{"rewards": {`[
		{"mode":"pve","lvl_min":1,"lvl_max":10,"drop_chance_pct":50,"drop_tier_min":1,"drop_tier_max":2},
		{"mode":"pvp","lvl_min":0,"lvl_max":10,"drop_chance_pct":50,"drop_tier_min":1,"drop_tier_max":2}
	]`}}
	rr := ts.post("/settings/battle-rewards", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.backend.sawRequest("PUT /admin/battle-rewards"))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#flash", "row 2")
}

func TestRewardReplaceSendsWrappedEnvelope(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	form := url.Values{"rewards": {`[
		{"mode":"pve","lvl_min":1,"lvl_max":10,"drop_chance_pct":50,"drop_tier_min":1,"drop_tier_max":2}
	]`}}
	rr := ts.post("/settings/battle-rewards", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	require.True(t, ts.backend.sawRequest("PUT /admin/battle-rewards"))

	body := string(ts.backend.body("PUT /admin/battle-rewards"))
	assert.Contains(t, body, `"items":[`)
	assert.Contains(t, body, `"mode":"pve"`)
}

func TestMalformedRewardJSONIsRejected(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	form := url.Values{"rewards": {`{"not":"an array"}`}}
	rr := ts.post("/settings/battle-rewards", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.backend.sawRequest("PUT /admin/battle-rewards"))
}
