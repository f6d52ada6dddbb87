package glapi

import (
	"context"
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// EnemyFilter narrows an enemy type listing. IsBoss is a tri-state filter:
// nil means no boss filtering.
type EnemyFilter struct {
	Query  string
	IsBoss *bool
	Limit  int
	Offset int
}

// ListEnemies returns a page of enemy types
func (c *Client) ListEnemies(ctx context.Context, filter EnemyFilter) (*model.EnemyList, error) {
	params := map[string]any{
		"q":      filter.Query,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	}
	if filter.IsBoss != nil {
		params["is_boss"] = *filter.IsBoss
	}

	var list model.EnemyList
	if err := c.get(ctx, "/admin/enemies", CleanQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetEnemy returns one enemy type
func (c *Client) GetEnemy(ctx context.Context, id model.EnemyTypeID) (*model.EnemyType, error) {
	var enemy model.EnemyType
	if err := c.get(ctx, fmt.Sprintf("/admin/enemies/%s", id), nil, &enemy); err != nil {
		return nil, err
	}
	return &enemy, nil
}

// CreateEnemy creates an enemy type
func (c *Client) CreateEnemy(ctx context.Context, enemy model.EnemyType) (*model.EnemyType, error) {
	var created model.EnemyType
	if err := c.post(ctx, "/admin/enemies", enemy, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEnemy applies a partial update to an enemy type
func (c *Client) UpdateEnemy(ctx context.Context, id model.EnemyTypeID, enemy model.EnemyType) (*model.EnemyType, error) {
	var updated model.EnemyType
	if err := c.patch(ctx, fmt.Sprintf("/admin/enemies/%s", id), enemy, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEnemy removes an enemy type
func (c *Client) DeleteEnemy(ctx context.Context, id model.EnemyTypeID) error {
	return c.delete(ctx, fmt.Sprintf("/admin/enemies/%s", id), nil)
}

// UpdateEnemyRewards updates only the reward bounds of an enemy type
func (c *Client) UpdateEnemyRewards(ctx context.Context, id model.EnemyTypeID, rewards model.EnemyRewards) (*model.EnemyType, error) {
	var updated model.EnemyType
	if err := c.patch(ctx, fmt.Sprintf("/admin/enemies/%s/rewards", id), rewards, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateEnemyLoot updates only the loot table of an enemy type
func (c *Client) UpdateEnemyLoot(ctx context.Context, id model.EnemyTypeID, loot model.EnemyLoot) (*model.EnemyType, error) {
	var updated model.EnemyType
	if err := c.patch(ctx, fmt.Sprintf("/admin/enemies/%s/loot", id), loot, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
