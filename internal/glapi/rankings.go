package glapi

import (
	"context"
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// RankingFilter narrows a leaderboard listing
type RankingFilter struct {
	Scope  model.RankingScope
	Query  string
	Limit  int
	Offset int
}

// ListRankings returns a page of the selected leaderboard
func (c *Client) ListRankings(ctx context.Context, filter RankingFilter) (*model.RankingList, error) {
	query := CleanQuery(map[string]any{
		"type":   string(filter.Scope),
		"q":      filter.Query,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	var list model.RankingList
	if err := c.get(ctx, "/admin/rankings", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetUserRank returns one user's rank in the selected leaderboard
func (c *Client) GetUserRank(ctx context.Context, id model.UserID, scope model.RankingScope) (*model.RankingEntry, error) {
	query := CleanQuery(map[string]any{
		"type": string(scope),
	})

	var entry model.RankingEntry
	if err := c.get(ctx, fmt.Sprintf("/admin/rankings/users/%s", id), query, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
