package model

import "encoding/json"

// EnemyTypeID uniquely identifies a PvE enemy type
type EnemyTypeID string

// EnemyType is a PvE enemy template, including its battle rewards and loot
// table. Stat field names follow the backend's native (Turkish) column names.
type EnemyType struct {
	ID        EnemyTypeID `json:"id,omitempty"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	BaseLevel int         `json:"base_level"`

	Strength  int `json:"guc"`
	Agility   int `json:"ceviklik"`
	Endurance int `json:"dayaniklilik"`
	Charisma  int `json:"karizma"`
	Intellect int `json:"zeka"`
	Skill     int `json:"beceri"`

	Description  string `json:"description,omitempty"`
	IconAssetID  string `json:"icon_asset_id,omitempty"`
	BattleAnimURL string `json:"battle_anim_url,omitempty"`
	IsBoss       bool   `json:"is_boss"`

	EnemyRewards
	EnemyLoot

	// AIProfile is an opaque behavior blob the combat engine interprets
	AIProfile json.RawMessage `json:"ai_profile,omitempty"`
}

// EnemyRewards are the win/lose XP and gold bounds for one enemy type.
// Also the body of the reward-only partial update endpoint.
type EnemyRewards struct {
	WinXPMin    int `json:"win_xp_min"`
	WinXPMax    int `json:"win_xp_max"`
	LoseXPMin   int `json:"lose_xp_min"`
	LoseXPMax   int `json:"lose_xp_max"`
	WinGoldMin  int `json:"win_gold_min"`
	WinGoldMax  int `json:"win_gold_max"`
	LoseGoldMin int `json:"lose_gold_min"`
	LoseGoldMax int `json:"lose_gold_max"`
}

// EnemyLoot is an enemy's drop table: a total drop chance percentage and
// five per-rarity-tier weights. Also the body of the loot-only partial
// update endpoint.
type EnemyLoot struct {
	LootChanceTotal int `json:"loot_chance_total"`
	LootT1          int `json:"loot_t1"`
	LootT2          int `json:"loot_t2"`
	LootT3          int `json:"loot_t3"`
	LootT4          int `json:"loot_t4"`
	LootT5          int `json:"loot_t5"`
}

// EnemyList is the backend's paginated enemy listing
type EnemyList struct {
	Items []EnemyType `json:"items"`
	Total int         `json:"total"`
}
