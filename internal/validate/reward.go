package validate

import (
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// RewardRow checks one battle-reward row. Rules run in a fixed order and the
// first violation wins; a row violating several rules reports only the
// earliest one.
func RewardRow(r model.BattleReward) error {
	if r.Mode == "" {
		return fmt.Errorf("mode is required")
	}
	if r.LvlMin < 1 {
		return fmt.Errorf("lvl_min must be >= 1")
	}
	if r.LvlMax < r.LvlMin {
		return fmt.Errorf("lvl_max must be >= lvl_min")
	}

	numeric := []struct {
		name  string
		value int
	}{
		{"win_xp_min", r.WinXPMin},
		{"win_xp_max", r.WinXPMax},
		{"lose_xp_min", r.LoseXPMin},
		{"lose_xp_max", r.LoseXPMax},
		{"win_gold_min", r.WinGoldMin},
		{"win_gold_max", r.WinGoldMax},
		{"lose_gold_min", r.LoseGoldMin},
		{"lose_gold_max", r.LoseGoldMax},
		{"drop_chance_pct", r.DropChancePct},
		{"drop_count_min", r.DropCountMin},
		{"drop_count_max", r.DropCountMax},
		{"drop_tier_min", r.DropTierMin},
		{"drop_tier_max", r.DropTierMax},
	}
	for _, f := range numeric {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}

	if r.WinXPMax < r.WinXPMin {
		return fmt.Errorf("win_xp_max must be >= win_xp_min")
	}
	if r.LoseXPMax < r.LoseXPMin {
		return fmt.Errorf("lose_xp_max must be >= lose_xp_min")
	}
	if r.WinGoldMax < r.WinGoldMin {
		return fmt.Errorf("win_gold_max must be >= win_gold_min")
	}
	if r.LoseGoldMax < r.LoseGoldMin {
		return fmt.Errorf("lose_gold_max must be >= lose_gold_min")
	}

	if r.DropChancePct < 0 || r.DropChancePct > 100 {
		return fmt.Errorf("drop_chance_pct must be within 0..100")
	}
	if r.DropCountMax < r.DropCountMin {
		return fmt.Errorf("drop_count_max must be >= drop_count_min")
	}
	if r.DropTierMin < 1 || r.DropTierMax > 5 {
		return fmt.Errorf("drop tier must be within 1..5")
	}
	if r.DropTierMax < r.DropTierMin {
		return fmt.Errorf("drop_tier_max must be >= drop_tier_min")
	}

	return nil
}
