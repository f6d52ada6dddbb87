package glapi

import (
	"context"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// GetSettings returns the full settings bundle
func (c *Client) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := c.get(ctx, "/admin/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateAdminSettings patches the admin sub-section
func (c *Client) UpdateAdminSettings(ctx context.Context, settings model.AdminSettings) error {
	return c.patch(ctx, "/admin/settings/admin", settings, nil)
}

// UpdateEnergySettings patches the energy sub-section
func (c *Client) UpdateEnergySettings(ctx context.Context, settings model.EnergySettings) error {
	return c.patch(ctx, "/admin/settings/energy", settings, nil)
}

// UpdatePvpSettings patches the PvP sub-section
func (c *Client) UpdatePvpSettings(ctx context.Context, settings model.PvpSettings) error {
	return c.patch(ctx, "/admin/settings/pvp", settings, nil)
}

// ReplaceBattleRewards replaces the entire battle-reward table. The backend
// accepts a bare array or an items wrapper; the client always sends the
// wrapper so both caller-side shapes hit the wire identically.
func (c *Client) ReplaceBattleRewards(ctx context.Context, rewards any) (*model.BattleRewardEnvelope, error) {
	body := rewardEnvelope(rewards)

	var resp model.BattleRewardEnvelope
	if err := c.put(ctx, "/admin/battle-rewards", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// rewardEnvelope resolves the bare-slice/envelope union into the canonical
// wire shape at the boundary
func rewardEnvelope(rewards any) model.BattleRewardEnvelope {
	switch v := rewards.(type) {
	case model.BattleRewardEnvelope:
		return v
	case *model.BattleRewardEnvelope:
		if v == nil {
			return model.BattleRewardEnvelope{Items: []model.BattleReward{}}
		}
		return *v
	case []model.BattleReward:
		return model.BattleRewardEnvelope{Items: v}
	case nil:
		return model.BattleRewardEnvelope{Items: []model.BattleReward{}}
	default:
		return model.BattleRewardEnvelope{Items: []model.BattleReward{}}
	}
}

// GetXpRules returns the backend's XP-curve preview
func (c *Client) GetXpRules(ctx context.Context) (*model.XpRules, error) {
	var rules model.XpRules
	if err := c.get(ctx, "/admin/xp-rules", nil, &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}
