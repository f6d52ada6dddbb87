package glapi

import (
	"context"
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// ItemFilter narrows an item template listing. Tier 0 means no tier filter.
type ItemFilter struct {
	Query    string
	Category string
	Rarity   string
	Tier     int
	Limit    int
	Offset   int
}

// ListItemTemplates returns a page of item templates
func (c *Client) ListItemTemplates(ctx context.Context, filter ItemFilter) (*model.ItemTemplateList, error) {
	params := map[string]any{
		"q":        filter.Query,
		"category": filter.Category,
		"rarity":   filter.Rarity,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	}
	if filter.Tier > 0 {
		params["tier"] = filter.Tier
	}

	var list model.ItemTemplateList
	if err := c.get(ctx, "/admin/item-templates", CleanQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetItemTemplate returns one item template
func (c *Client) GetItemTemplate(ctx context.Context, id model.ItemTemplateID) (*model.ItemTemplate, error) {
	var item model.ItemTemplate
	if err := c.get(ctx, fmt.Sprintf("/admin/item-templates/%s", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItemTemplate creates an item template
func (c *Client) CreateItemTemplate(ctx context.Context, item model.ItemTemplate) (*model.ItemTemplate, error) {
	var created model.ItemTemplate
	if err := c.post(ctx, "/admin/item-templates", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItemTemplate applies a partial update to an item template
func (c *Client) UpdateItemTemplate(ctx context.Context, id model.ItemTemplateID, item model.ItemTemplate) (*model.ItemTemplate, error) {
	var updated model.ItemTemplate
	if err := c.patch(ctx, fmt.Sprintf("/admin/item-templates/%s", id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItemTemplate removes an item template
func (c *Client) DeleteItemTemplate(ctx context.Context, id model.ItemTemplateID) error {
	return c.delete(ctx, fmt.Sprintf("/admin/item-templates/%s", id), nil)
}

// ListEquipmentSlots returns the read-only equipment slot definitions
func (c *Client) ListEquipmentSlots(ctx context.Context) (*model.EquipmentSlotList, error) {
	var list model.EquipmentSlotList
	if err := c.get(ctx, "/admin/equipment-slots", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
