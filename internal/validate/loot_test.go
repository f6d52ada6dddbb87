package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugordi/gladialore-admin/internal/model"
)

func TestLootAcceptsBoundaryValues(t *testing.T) {
	loot := model.EnemyLoot{
		LootChanceTotal: 100,
		LootT1:          60, LootT2: 20, LootT3: 10, LootT4: 5, LootT5: 5,
	}
	assert.NoError(t, Loot(loot))
}

func TestLootRejectsTotalOver100(t *testing.T) {
	loot := model.EnemyLoot{LootChanceTotal: 101}
	assert.ErrorIs(t, Loot(loot), ErrLootTotalRange)
}

func TestLootRejectsNegativeTotal(t *testing.T) {
	loot := model.EnemyLoot{LootChanceTotal: -1}
	assert.ErrorIs(t, Loot(loot), ErrLootTotalRange)
}

func TestLootRejectsTierSumOver100(t *testing.T) {
	loot := model.EnemyLoot{
		LootChanceTotal: 50,
		LootT1:          50, LootT2: 51,
	}
	assert.ErrorIs(t, Loot(loot), ErrLootTierSum)
}

func TestLootDoesNotCrossCheckTotalAgainstTierSum(t *testing.T) {
	// total=0 with tiers summing to exactly 100 is valid; each bound is
	// checked on its own
	loot := model.EnemyLoot{
		LootChanceTotal: 0,
		LootT1:          20, LootT2: 20, LootT3: 20, LootT4: 20, LootT5: 20,
	}
	assert.NoError(t, Loot(loot))
}

func TestLootTotalRangeCheckedBeforeTierSum(t *testing.T) {
	loot := model.EnemyLoot{
		LootChanceTotal: 101,
		LootT1:          101,
	}
	assert.ErrorIs(t, Loot(loot), ErrLootTotalRange)
}
