package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/validate"
)

func newEnemiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enemies",
		Short: "Enemy type management commands",
	}

	cmd.AddCommand(newEnemiesListCmd())
	cmd.AddCommand(newEnemiesGetCmd())
	cmd.AddCommand(newEnemiesCreateCmd())
	cmd.AddCommand(newEnemiesUpdateCmd())
	cmd.AddCommand(newEnemiesSetRewardsCmd())
	cmd.AddCommand(newEnemiesSetLootCmd())
	cmd.AddCommand(newEnemiesDeleteCmd())

	return cmd
}

func newEnemiesListCmd() *cobra.Command {
	var query string
	var bossOnly, regularOnly bool
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enemy types",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := glapi.EnemyFilter{Query: query, Limit: limit, Offset: offset}
			if bossOnly {
				isBoss := true
				filter.IsBoss = &isBoss
			} else if regularOnly {
				isBoss := false
				filter.IsBoss = &isBoss
			}

			enemies, err := client.ListEnemies(cmd.Context(), filter)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(enemies)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search by name or code")
	cmd.Flags().BoolVar(&bossOnly, "boss", false, "Bosses only")
	cmd.Flags().BoolVar(&regularOnly, "regular", false, "Regular enemies only")
	cmd.Flags().IntVar(&limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newEnemiesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <enemy-id>",
		Short: "Show one enemy type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enemy, err := client.GetEnemy(cmd.Context(), model.EnemyTypeID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*enemy)
			return nil
		},
	}
}

// enemyFlags registers the full enemy field set shared by create and update
func enemyFlags(cmd *cobra.Command, enemy *model.EnemyType, aiProfile *string) {
	cmd.Flags().StringVar(&enemy.Code, "code", "", "Enemy code")
	cmd.Flags().StringVar(&enemy.Name, "name", "", "Enemy name")
	cmd.Flags().IntVar(&enemy.BaseLevel, "base-level", 1, "Base level")
	cmd.Flags().IntVar(&enemy.Strength, "str", 1, "Strength")
	cmd.Flags().IntVar(&enemy.Agility, "agi", 1, "Agility")
	cmd.Flags().IntVar(&enemy.Endurance, "end", 1, "Endurance")
	cmd.Flags().IntVar(&enemy.Charisma, "cha", 1, "Charisma")
	cmd.Flags().IntVar(&enemy.Intellect, "int", 1, "Intellect")
	cmd.Flags().IntVar(&enemy.Skill, "skl", 0, "Skill")
	cmd.Flags().StringVar(&enemy.Description, "description", "", "Description")
	cmd.Flags().StringVar(&enemy.BattleAnimURL, "anim-url", "", "Battle animation URL")
	cmd.Flags().BoolVar(&enemy.IsBoss, "boss", false, "Mark as boss")
	cmd.Flags().StringVar(aiProfile, "ai-profile", "", "AI profile JSON")
}

func parseAIProfile(enemy *model.EnemyType, aiProfile string) error {
	if aiProfile == "" {
		return nil
	}
	if !json.Valid([]byte(aiProfile)) {
		return fmt.Errorf("--ai-profile must be valid JSON")
	}
	enemy.AIProfile = json.RawMessage(aiProfile)
	return nil
}

func newEnemiesCreateCmd() *cobra.Command {
	var enemy model.EnemyType
	var aiProfile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an enemy type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseAIProfile(&enemy, aiProfile); err != nil {
				return err
			}

			created, err := client.CreateEnemy(cmd.Context(), enemy)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*created)
			return nil
		},
	}

	enemyFlags(cmd, &enemy, &aiProfile)
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEnemiesUpdateCmd() *cobra.Command {
	var enemy model.EnemyType
	var aiProfile string

	cmd := &cobra.Command{
		Use:   "update <enemy-id>",
		Short: "Update an enemy type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseAIProfile(&enemy, aiProfile); err != nil {
				return err
			}

			updated, err := client.UpdateEnemy(cmd.Context(), model.EnemyTypeID(args[0]), enemy)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
	}

	enemyFlags(cmd, &enemy, &aiProfile)
	return cmd
}

func newEnemiesSetRewardsCmd() *cobra.Command {
	var rewards model.EnemyRewards

	cmd := &cobra.Command{
		Use:   "set-rewards <enemy-id>",
		Short: "Replace an enemy's battle rewards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := client.UpdateEnemyRewards(cmd.Context(), model.EnemyTypeID(args[0]), rewards)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
	}

	cmd.Flags().IntVar(&rewards.WinXPMin, "win-xp-min", 0, "Minimum XP on win")
	cmd.Flags().IntVar(&rewards.WinXPMax, "win-xp-max", 0, "Maximum XP on win")
	cmd.Flags().IntVar(&rewards.LoseXPMin, "lose-xp-min", 0, "Minimum XP on loss")
	cmd.Flags().IntVar(&rewards.LoseXPMax, "lose-xp-max", 0, "Maximum XP on loss")
	cmd.Flags().IntVar(&rewards.WinGoldMin, "win-gold-min", 0, "Minimum gold on win")
	cmd.Flags().IntVar(&rewards.WinGoldMax, "win-gold-max", 0, "Maximum gold on win")
	cmd.Flags().IntVar(&rewards.LoseGoldMin, "lose-gold-min", 0, "Minimum gold on loss")
	cmd.Flags().IntVar(&rewards.LoseGoldMax, "lose-gold-max", 0, "Maximum gold on loss")

	return cmd
}

func newEnemiesSetLootCmd() *cobra.Command {
	var loot model.EnemyLoot

	cmd := &cobra.Command{
		Use:   "set-loot <enemy-id>",
		Short: "Replace an enemy's loot table",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Rejected locally before anything is sent
			if err := validate.Loot(loot); err != nil {
				return err
			}

			updated, err := client.UpdateEnemyLoot(cmd.Context(), model.EnemyTypeID(args[0]), loot)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().IntVar(&loot.LootChanceTotal, "total", 0, "Total drop chance percent")
	cmd.Flags().IntVar(&loot.LootT1, "t1", 0, "Tier 1 weight")
	cmd.Flags().IntVar(&loot.LootT2, "t2", 0, "Tier 2 weight")
	cmd.Flags().IntVar(&loot.LootT3, "t3", 0, "Tier 3 weight")
	cmd.Flags().IntVar(&loot.LootT4, "t4", 0, "Tier 4 weight")
	cmd.Flags().IntVar(&loot.LootT5, "t5", 0, "Tier 5 weight")

	return cmd
}

func newEnemiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <enemy-id>",
		Short: "Delete an enemy type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteEnemy(cmd.Context(), model.EnemyTypeID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Enemy type deleted")
			return nil
		},
	}
}
