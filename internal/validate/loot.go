// Package validate holds the client-side payload validators that run before
// a mutating backend call. Each validator checks one candidate record in a
// fixed rule order and returns the first violation only; the pages show a
// single message and the remaining rules are not evaluated.
package validate

import (
	"errors"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// Loot rule violations
var (
	ErrLootTotalRange = errors.New("loot_chance_total must be within 0..100")
	ErrLootTierSum    = errors.New("loot_t1..t5 must not sum to more than 100")
)

// Loot checks an enemy loot table. The total chance and the tier-weight sum
// are bounded independently; there is no cross-check between them.
func Loot(loot model.EnemyLoot) error {
	if loot.LootChanceTotal < 0 || loot.LootChanceTotal > 100 {
		return ErrLootTotalRange
	}

	sum := loot.LootT1 + loot.LootT2 + loot.LootT3 + loot.LootT4 + loot.LootT5
	if sum > 100 {
		return ErrLootTierSum
	}

	return nil
}
