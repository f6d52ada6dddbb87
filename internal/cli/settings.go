package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/validate"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Game settings commands",
	}

	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetAdminCmd())
	cmd.AddCommand(newSettingsSetEnergyCmd())
	cmd.AddCommand(newSettingsSetPvpCmd())
	cmd.AddCommand(newSettingsReplaceRewardsCmd())
	cmd.AddCommand(newSettingsXpRulesCmd())

	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the settings bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := client.GetSettings(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(settings)
			return nil
		},
	}
}

func newSettingsSetAdminCmd() *cobra.Command {
	var settings model.AdminSettings

	cmd := &cobra.Command{
		Use:   "set-admin",
		Short: "Update the admin settings sub-section",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.UpdateAdminSettings(cmd.Context(), settings); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Admin settings saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&settings.PointsPerLevel, "points-per-level", 0, "Stat points granted per level")
	_ = cmd.MarkFlagRequired("points-per-level")

	return cmd
}

func newSettingsSetEnergyCmd() *cobra.Command {
	var settings model.EnergySettings

	cmd := &cobra.Command{
		Use:   "set-energy",
		Short: "Update the energy settings sub-section",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.UpdateEnergySettings(cmd.Context(), settings); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Energy settings saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&settings.BattleCost, "battle-cost", 0, "Energy cost per battle")
	_ = cmd.MarkFlagRequired("battle-cost")

	return cmd
}

func newSettingsSetPvpCmd() *cobra.Command {
	var settings model.PvpSettings

	cmd := &cobra.Command{
		Use:   "set-pvp",
		Short: "Update the PvP settings sub-section",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.UpdatePvpSettings(cmd.Context(), settings); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("PvP settings saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&settings.StealPctMin, "steal-min", 0, "Minimum steal percent")
	cmd.Flags().IntVar(&settings.StealPctMax, "steal-max", 0, "Maximum steal percent")

	return cmd
}

func newSettingsReplaceRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace-rewards <file>",
		Short: "Full-replace the battle reward table from a JSON file",
		Long: `Reads a JSON array of battle reward rows from the given file,
validates every row locally, and replaces the backend's whole table.
The submission is rejected on the first invalid row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var rewards []model.BattleReward
			if err := json.Unmarshal(data, &rewards); err != nil {
				return fmt.Errorf("rewards file must be a JSON array: %w", err)
			}

			for i, row := range rewards {
				if err := validate.RewardRow(row); err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
			}

			saved, err := client.ReplaceBattleRewards(cmd.Context(), rewards)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Replaced battle rewards (%d rows)", len(saved.Items)))
			return nil
		},
	}

	return cmd
}

func newSettingsXpRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xp-rules",
		Short: "Show the XP curve rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := client.GetXpRules(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(rules.Rules)
			return nil
		},
	}
}
