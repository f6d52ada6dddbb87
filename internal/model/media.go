package model

// MediaAssetID uniquely identifies a stored media asset
type MediaAssetID string

// MediaAsset is an uploaded or linked media file (icons, battle animations)
type MediaAsset struct {
	ID   MediaAssetID `json:"id"`
	URL  string       `json:"url"`
	Kind string       `json:"kind"`
	Name string       `json:"name,omitempty"`
}

// MediaAssetList is the backend's paginated media listing
type MediaAssetList struct {
	Items []MediaAsset `json:"items"`
	Total int          `json:"total"`
}
