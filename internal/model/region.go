package model

// RegionID uniquely identifies a game region
type RegionID string

// Region is a world area players fight in
type Region struct {
	ID               RegionID `json:"id"`
	Name             string   `json:"name"`
	MinLevel         int      `json:"min_level"`
	ShortDescription string   `json:"short_description,omitempty"`
	Story            string   `json:"story,omitempty"`
	IconAssetID      string   `json:"icon_asset_id,omitempty"`
}

// RegionList is the backend's paginated region listing
type RegionList struct {
	Items []Region `json:"items"`
	Total int      `json:"total"`
}

// RegionEnemyDef places an enemy type in a region's spawn population
type RegionEnemyDef struct {
	ID          string      `json:"id,omitempty"`
	EnemyTypeID EnemyTypeID `json:"enemy_type_id"`
	MinLevel    int         `json:"min_level"`
	MaxLevel    int         `json:"max_level"`
	Weight      int         `json:"weight"`
}

// RegionEnemyList wraps a region's population entries
type RegionEnemyList struct {
	Items []RegionEnemyDef `json:"items"`
}
