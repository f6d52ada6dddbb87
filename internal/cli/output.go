package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.User:
		o.printUser(v)
	case *model.UserList:
		o.printUserList(v)
	case model.Region:
		o.printRegion(v)
	case *model.RegionList:
		o.printRegionList(v)
	case *model.RegionEnemyList:
		o.printRegionEnemyList(v)
	case model.EnemyType:
		o.printEnemy(v)
	case *model.EnemyList:
		o.printEnemyList(v)
	case model.ItemTemplate:
		o.printItem(v)
	case *model.ItemTemplateList:
		o.printItemList(v)
	case *model.EquipmentSlotList:
		o.printSlotList(v)
	case *model.MediaAssetList:
		o.printMediaList(v)
	case model.MediaAsset:
		o.printMediaAsset(v)
	case *model.RankingList:
		o.printRankingList(v)
	case model.RankingEntry:
		o.printRankingEntry(v)
	case *model.Settings:
		o.printSettings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u model.User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Status: %s\n", u.Status)
	fmt.Printf("Role: %s\n", u.Role)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	if u.CreatedAt != "" {
		fmt.Printf("Created: %s\n", u.CreatedAt)
	}
}

func (o *Output) printUserList(l *model.UserList) {
	for _, u := range l.Items {
		fmt.Printf("%-24s %-16s %-8s %s\n", u.ID, u.Username, u.Status, u.Role)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printRegion(r model.Region) {
	fmt.Printf("Region: %s (%s)\n", r.Name, r.ID)
	fmt.Printf("Min Level: %d\n", r.MinLevel)
	if r.ShortDescription != "" {
		fmt.Printf("Description: %s\n", r.ShortDescription)
	}
}

func (o *Output) printRegionList(l *model.RegionList) {
	for _, r := range l.Items {
		fmt.Printf("%-24s %-20s lvl %d+\n", r.ID, r.Name, r.MinLevel)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printRegionEnemyList(l *model.RegionEnemyList) {
	for _, d := range l.Items {
		fmt.Printf("%-24s enemy=%s levels=%d-%d weight=%d\n", d.ID, d.EnemyTypeID, d.MinLevel, d.MaxLevel, d.Weight)
	}
}

func (o *Output) printEnemy(e model.EnemyType) {
	fmt.Printf("Enemy: %s (%s)\n", e.Name, e.Code)
	fmt.Printf("Base Level: %d", e.BaseLevel)
	if e.IsBoss {
		fmt.Print(" [boss]")
	}
	fmt.Println()
	fmt.Printf("Stats: STR %d / AGI %d / END %d / CHA %d / INT %d / SKL %d\n",
		e.Strength, e.Agility, e.Endurance, e.Charisma, e.Intellect, e.Skill)
	fmt.Printf("Loot: %d%% total, tiers %d/%d/%d/%d/%d\n",
		e.LootChanceTotal, e.LootT1, e.LootT2, e.LootT3, e.LootT4, e.LootT5)
}

func (o *Output) printEnemyList(l *model.EnemyList) {
	for _, e := range l.Items {
		boss := ""
		if e.IsBoss {
			boss = " [boss]"
		}
		fmt.Printf("%-24s %-16s %-20s lvl %d%s\n", e.ID, e.Code, e.Name, e.BaseLevel, boss)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printItem(i model.ItemTemplate) {
	fmt.Printf("Item: %s (%s)\n", i.Name, i.Code)
	fmt.Printf("Category: %s  Rarity: %s  Tier: %d\n", i.Category, i.Rarity, i.Tier)
	if i.Slot != "" {
		fmt.Printf("Slot: %s\n", i.Slot)
	}
}

func (o *Output) printItemList(l *model.ItemTemplateList) {
	for _, i := range l.Items {
		fmt.Printf("%-24s %-16s %-20s %-10s %-10s t%d\n", i.ID, i.Code, i.Name, i.Category, i.Rarity, i.Tier)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printSlotList(l *model.EquipmentSlotList) {
	for _, s := range l.Items {
		fmt.Printf("%-16s %s\n", s.Code, s.Name)
	}
}

func (o *Output) printMediaList(l *model.MediaAssetList) {
	for _, a := range l.Items {
		fmt.Printf("%-24s %-10s %s\n", a.ID, a.Kind, a.URL)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printMediaAsset(a model.MediaAsset) {
	fmt.Printf("Asset: %s\n", a.ID)
	fmt.Printf("Kind: %s\n", a.Kind)
	fmt.Printf("URL: %s\n", a.URL)
}

func (o *Output) printRankingList(l *model.RankingList) {
	for _, e := range l.Items {
		fmt.Printf("%4d. %-20s lvl %-4d %d\n", e.Rank, e.Username, e.Level, e.Score)
	}
	fmt.Printf("Total: %d\n", l.Total)
}

func (o *Output) printRankingEntry(e model.RankingEntry) {
	fmt.Printf("Rank: %d\n", e.Rank)
	fmt.Printf("Player: %s (%s)\n", e.Username, e.UserID)
	fmt.Printf("Score: %d\n", e.Score)
}

func (o *Output) printSettings(s *model.Settings) {
	fmt.Printf("Points per level: %d\n", s.Admin.PointsPerLevel)
	fmt.Printf("Battle energy cost: %d\n", s.Energy.BattleCost)
	fmt.Printf("PvP steal: %d%% - %d%%\n", s.Pvp.StealPctMin, s.Pvp.StealPctMax)
	if len(s.BattleRewards) > 0 {
		fmt.Printf("Battle reward rows: %d\n", len(s.BattleRewards))
		for _, r := range s.BattleRewards {
			fmt.Printf("  %-4s lvl %d-%d  win xp %d-%d  gold %d-%d  drop %d%%\n",
				r.Mode, r.LvlMin, r.LvlMax, r.WinXPMin, r.WinXPMax, r.WinGoldMin, r.WinGoldMax, r.DropChancePct)
		}
	}
}
