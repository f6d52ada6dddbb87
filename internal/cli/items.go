package cli

import (
	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item template management commands",
	}

	cmd.AddCommand(newItemsListCmd())
	cmd.AddCommand(newItemsGetCmd())
	cmd.AddCommand(newItemsCreateCmd())
	cmd.AddCommand(newItemsUpdateCmd())
	cmd.AddCommand(newItemsDeleteCmd())
	cmd.AddCommand(newItemsSlotsCmd())

	return cmd
}

func newItemsListCmd() *cobra.Command {
	var query, category, rarity string
	var tier, limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List item templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := client.ListItemTemplates(cmd.Context(), glapi.ItemFilter{
				Query:    query,
				Category: category,
				Rarity:   rarity,
				Tier:     tier,
				Limit:    limit,
				Offset:   offset,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(items)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search by name or code")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&rarity, "rarity", "", "Filter by rarity")
	cmd.Flags().IntVar(&tier, "tier", 0, "Filter by tier (0 = all)")
	cmd.Flags().IntVar(&limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newItemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <item-id>",
		Short: "Show one item template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := client.GetItemTemplate(cmd.Context(), model.ItemTemplateID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*item)
			return nil
		},
	}
}

func itemFlags(cmd *cobra.Command, item *model.ItemTemplate) {
	cmd.Flags().StringVar(&item.Code, "code", "", "Item code")
	cmd.Flags().StringVar(&item.Name, "name", "", "Item name")
	cmd.Flags().StringVar(&item.Category, "category", "", "Category")
	cmd.Flags().StringVar(&item.Rarity, "rarity", "", "Rarity")
	cmd.Flags().IntVar(&item.Tier, "tier", 1, "Tier")
	cmd.Flags().StringVar(&item.Slot, "slot", "", "Equipment slot")
	cmd.Flags().StringVar(&item.Description, "description", "", "Description")
	cmd.Flags().StringVar(&item.IconAssetID, "icon", "", "Icon asset ID")

	cmd.Flags().IntVar(&item.StrengthFlat, "str-flat", 0, "Flat strength bonus")
	cmd.Flags().IntVar(&item.AgilityFlat, "agi-flat", 0, "Flat agility bonus")
	cmd.Flags().IntVar(&item.EnduranceFlat, "end-flat", 0, "Flat endurance bonus")
	cmd.Flags().IntVar(&item.CharismaFlat, "cha-flat", 0, "Flat charisma bonus")
	cmd.Flags().IntVar(&item.IntellectFlat, "int-flat", 0, "Flat intellect bonus")
	cmd.Flags().IntVar(&item.AbilityFlat, "abl-flat", 0, "Flat ability bonus")

	cmd.Flags().IntVar(&item.StrengthPct, "str-pct", 0, "Percent strength bonus")
	cmd.Flags().IntVar(&item.AgilityPct, "agi-pct", 0, "Percent agility bonus")
	cmd.Flags().IntVar(&item.EndurancePct, "end-pct", 0, "Percent endurance bonus")
	cmd.Flags().IntVar(&item.CharismaPct, "cha-pct", 0, "Percent charisma bonus")
	cmd.Flags().IntVar(&item.IntellectPct, "int-pct", 0, "Percent intellect bonus")
	cmd.Flags().IntVar(&item.AbilityPct, "abl-pct", 0, "Percent ability bonus")
}

func newItemsCreateCmd() *cobra.Command {
	var item model.ItemTemplate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item template",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := client.CreateItemTemplate(cmd.Context(), item)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*created)
			return nil
		},
	}

	itemFlags(cmd, &item)
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemsUpdateCmd() *cobra.Command {
	var item model.ItemTemplate

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Update an item template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := client.UpdateItemTemplate(cmd.Context(), model.ItemTemplateID(args[0]), item)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*updated)
			return nil
		},
	}

	itemFlags(cmd, &item)

	return cmd
}

func newItemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteItemTemplate(cmd.Context(), model.ItemTemplateID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Item template deleted")
			return nil
		},
	}
}

func newItemsSlotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List equipment slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := client.ListEquipmentSlots(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(slots)
			return nil
		},
	}
}
