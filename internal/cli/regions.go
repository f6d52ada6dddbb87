package cli

import (
	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Region management commands",
	}

	cmd.AddCommand(newRegionsListCmd())
	cmd.AddCommand(newRegionsGetCmd())
	cmd.AddCommand(newRegionsCreateCmd())
	cmd.AddCommand(newRegionsUpdateCmd())
	cmd.AddCommand(newRegionsDeleteCmd())
	cmd.AddCommand(newRegionsEnemiesCmd())

	return cmd
}

func newRegionsListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := client.ListRegions(cmd.Context(), glapi.RegionFilter{Query: query})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(regions)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search by name")

	return cmd
}

func newRegionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <region-id>",
		Short: "Show one region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := client.GetRegion(cmd.Context(), model.RegionID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*region)
			return nil
		},
	}
}

func regionFlags(cmd *cobra.Command, region *model.Region) {
	cmd.Flags().StringVar(&region.Name, "name", "", "Region name")
	cmd.Flags().IntVar(&region.MinLevel, "min-level", 1, "Minimum player level")
	cmd.Flags().StringVar(&region.ShortDescription, "description", "", "Short description")
	cmd.Flags().StringVar(&region.Story, "story", "", "Region backstory")
	cmd.Flags().StringVar(&region.IconAssetID, "icon", "", "Icon asset ID")
}

func newRegionsCreateCmd() *cobra.Command {
	var region model.Region

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := client.CreateRegion(cmd.Context(), region)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*created)
			return nil
		},
	}

	regionFlags(cmd, &region)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRegionsUpdateCmd() *cobra.Command {
	var region model.Region

	cmd := &cobra.Command{
		Use:   "update <region-id>",
		Short: "Update a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := client.UpdateRegion(cmd.Context(), model.RegionID(args[0]), region)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
	}

	regionFlags(cmd, &region)

	return cmd
}

func newRegionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <region-id>",
		Short: "Delete a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteRegion(cmd.Context(), model.RegionID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Region deleted")
			return nil
		},
	}
}

func newRegionsEnemiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enemies",
		Short: "Manage a region's enemy population",
	}

	cmd.AddCommand(newRegionsEnemiesListCmd())
	cmd.AddCommand(newRegionsEnemiesAddCmd())
	cmd.AddCommand(newRegionsEnemiesUpdateCmd())
	cmd.AddCommand(newRegionsEnemiesRemoveCmd())

	return cmd
}

func newRegionsEnemiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <region-id>",
		Short: "List a region's population entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			population, err := client.ListRegionEnemies(cmd.Context(), model.RegionID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(population)
			return nil
		},
	}
}

func defFlags(cmd *cobra.Command, def *model.RegionEnemyDef) {
	cmd.Flags().IntVar(&def.MinLevel, "min-level", 1, "Minimum spawn level")
	cmd.Flags().IntVar(&def.MaxLevel, "max-level", 1, "Maximum spawn level")
	cmd.Flags().IntVar(&def.Weight, "weight", 10, "Spawn weight")
}

func newRegionsEnemiesAddCmd() *cobra.Command {
	var def model.RegionEnemyDef
	var enemyType string

	cmd := &cobra.Command{
		Use:   "add <region-id>",
		Short: "Add an enemy type to a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def.EnemyTypeID = model.EnemyTypeID(enemyType)
			created, err := client.AddRegionEnemy(cmd.Context(), model.RegionID(args[0]), def)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*created)
			return nil
		},
	}

	cmd.Flags().StringVar(&enemyType, "enemy-type", "", "Enemy type ID (required)")
	defFlags(cmd, &def)
	_ = cmd.MarkFlagRequired("enemy-type")

	return cmd
}

func newRegionsEnemiesUpdateCmd() *cobra.Command {
	var def model.RegionEnemyDef
	var enemyType string

	cmd := &cobra.Command{
		Use:   "update <def-id>",
		Short: "Update a population entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def.EnemyTypeID = model.EnemyTypeID(enemyType)
			updated, err := client.UpdateRegionEnemy(cmd.Context(), args[0], def)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&enemyType, "enemy-type", "", "Enemy type ID")
	defFlags(cmd, &def)

	return cmd
}

func newRegionsEnemiesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <def-id>",
		Short: "Remove a population entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.RemoveRegionEnemy(cmd.Context(), args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Population entry removed")
			return nil
		},
	}
}
