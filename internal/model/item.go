package model

// ItemTemplateID uniquely identifies an item template
type ItemTemplateID string

// ItemTemplate is a design-time item definition. Stat modifiers are split
// into flat and percentage bonuses per character attribute; JSON names
// follow the backend's native column names.
type ItemTemplate struct {
	ID       ItemTemplateID `json:"id,omitempty"`
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Rarity   string         `json:"rarity"`
	Tier     int            `json:"tier"`
	Slot     string         `json:"slot,omitempty"`

	StrengthFlat  int `json:"guc_flat"`
	AgilityFlat   int `json:"ceviklik_flat"`
	EnduranceFlat int `json:"dayaniklilik_flat"`
	CharismaFlat  int `json:"karizma_flat"`
	IntellectFlat int `json:"zeka_flat"`
	AbilityFlat   int `json:"yetenek_flat"`

	StrengthPct  int `json:"guc_pct"`
	AgilityPct   int `json:"ceviklik_pct"`
	EndurancePct int `json:"dayaniklilik_pct"`
	CharismaPct  int `json:"karizma_pct"`
	IntellectPct int `json:"zeka_pct"`
	AbilityPct   int `json:"yetenek_pct"`

	Description string `json:"description,omitempty"`
	IconAssetID string `json:"icon_asset_id,omitempty"`
}

// ItemTemplateList is the backend's paginated item template listing
type ItemTemplateList struct {
	Items []ItemTemplate `json:"items"`
	Total int            `json:"total"`
}

// EquipmentSlot is a read-only slot definition
type EquipmentSlot struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// EquipmentSlotList wraps the equipment slot listing
type EquipmentSlotList struct {
	Items []EquipmentSlot `json:"items"`
}
