package model

// RankingScope selects which leaderboard a ranking query reads
type RankingScope string

// Leaderboard scopes as the backend names them
const (
	ScopeSeason  RankingScope = "season"
	ScopeMonthly RankingScope = "monthly"
	ScopeAllTime RankingScope = "all"
)

// RankingEntry is one leaderboard row
type RankingEntry struct {
	Rank     int    `json:"rank"`
	UserID   UserID `json:"user_id"`
	Username string `json:"username"`
	Level    int    `json:"level,omitempty"`
	Score    int    `json:"score"`
}

// RankingList is the backend's paginated leaderboard listing
type RankingList struct {
	Items []RankingEntry `json:"items"`
	Total int            `json:"total"`
}
