package glapi

import (
	"context"
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// RegionFilter narrows a region listing
type RegionFilter struct {
	Query  string
	Limit  int
	Offset int
}

// ListRegions returns a page of regions
func (c *Client) ListRegions(ctx context.Context, filter RegionFilter) (*model.RegionList, error) {
	query := CleanQuery(map[string]any{
		"q":      filter.Query,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	var list model.RegionList
	if err := c.get(ctx, "/admin/regions", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetRegion returns one region
func (c *Client) GetRegion(ctx context.Context, id model.RegionID) (*model.Region, error) {
	var region model.Region
	if err := c.get(ctx, fmt.Sprintf("/admin/regions/%s", id), nil, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

// CreateRegion creates a region
func (c *Client) CreateRegion(ctx context.Context, region model.Region) (*model.Region, error) {
	var created model.Region
	if err := c.post(ctx, "/admin/regions", region, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRegion applies a partial update to a region
func (c *Client) UpdateRegion(ctx context.Context, id model.RegionID, region model.Region) (*model.Region, error) {
	var updated model.Region
	if err := c.patch(ctx, fmt.Sprintf("/admin/regions/%s", id), region, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRegion removes a region
func (c *Client) DeleteRegion(ctx context.Context, id model.RegionID) error {
	return c.delete(ctx, fmt.Sprintf("/admin/regions/%s", id), nil)
}

// ListRegionEnemies returns a region's spawn population
func (c *Client) ListRegionEnemies(ctx context.Context, id model.RegionID) (*model.RegionEnemyList, error) {
	var list model.RegionEnemyList
	if err := c.get(ctx, fmt.Sprintf("/admin/regions/%s/enemies", id), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddRegionEnemy adds an enemy type to a region's spawn population
func (c *Client) AddRegionEnemy(ctx context.Context, id model.RegionID, def model.RegionEnemyDef) (*model.RegionEnemyDef, error) {
	var created model.RegionEnemyDef
	if err := c.post(ctx, fmt.Sprintf("/admin/regions/%s/enemies", id), def, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRegionEnemy updates a population entry's level range and weight
func (c *Client) UpdateRegionEnemy(ctx context.Context, defID string, def model.RegionEnemyDef) (*model.RegionEnemyDef, error) {
	var updated model.RegionEnemyDef
	if err := c.patch(ctx, fmt.Sprintf("/admin/region-enemy-defs/%s", defID), def, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveRegionEnemy removes a population entry
func (c *Client) RemoveRegionEnemy(ctx context.Context, defID string) error {
	return c.delete(ctx, fmt.Sprintf("/admin/region-enemy-defs/%s", defID), nil)
}
