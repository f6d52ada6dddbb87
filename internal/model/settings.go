package model

import "encoding/json"

// AdminSettings is the admin sub-section of the settings bundle
type AdminSettings struct {
	PointsPerLevel int `json:"points_per_level"`
}

// EnergySettings is the energy sub-section of the settings bundle
type EnergySettings struct {
	BattleCost int `json:"battle_cost"`
}

// PvpSettings is the PvP economy sub-section of the settings bundle
type PvpSettings struct {
	StealPctMin int `json:"steal_pct_min"`
	StealPctMax int `json:"steal_pct_max"`
}

// Settings is the full settings bundle the backend returns in one read
type Settings struct {
	Admin         AdminSettings  `json:"admin"`
	Energy        EnergySettings `json:"energy"`
	Pvp           PvpSettings    `json:"pvp"`
	BattleRewards []BattleReward `json:"battle_rewards,omitempty"`
}

// BattleReward is one level-bracket's win/lose reward configuration for a
// battle mode ("pve" or "pvp")
type BattleReward struct {
	ID     string `json:"id,omitempty"`
	Mode   string `json:"mode"`
	LvlMin int    `json:"lvl_min"`
	LvlMax int    `json:"lvl_max"`

	WinXPMin  int `json:"win_xp_min"`
	WinXPMax  int `json:"win_xp_max"`
	LoseXPMin int `json:"lose_xp_min"`
	LoseXPMax int `json:"lose_xp_max"`

	WinGoldMin  int `json:"win_gold_min"`
	WinGoldMax  int `json:"win_gold_max"`
	LoseGoldMin int `json:"lose_gold_min"`
	LoseGoldMax int `json:"lose_gold_max"`

	DropChancePct int `json:"drop_chance_pct"`
	DropCountMin  int `json:"drop_count_min"`
	DropCountMax  int `json:"drop_count_max"`
	DropTierMin   int `json:"drop_tier_min"`
	DropTierMax   int `json:"drop_tier_max"`
}

// BattleRewardEnvelope is the wire shape of the full-replace endpoint's
// request and response bodies
type BattleRewardEnvelope struct {
	Items []BattleReward `json:"items"`
}

// XpRules is the XP-curve preview returned by the backend; the curve format
// is owned by the backend and rendered as-is
type XpRules struct {
	Rules json.RawMessage `json:"rules"`
}
