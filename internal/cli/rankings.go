package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

func scopeFromFlag(scope string) (model.RankingScope, error) {
	switch scope {
	case "seasonal":
		return model.ScopeSeason, nil
	case "monthly":
		return model.ScopeMonthly, nil
	case "all":
		return model.ScopeAllTime, nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be seasonal, monthly, or all", scope)
	}
}

func newRankingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Leaderboard commands",
	}

	cmd.AddCommand(newRankingsListCmd())
	cmd.AddCommand(newRankingsUserCmd())

	return cmd
}

func newRankingsListCmd() *cobra.Command {
	var scope, query string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			backendScope, err := scopeFromFlag(scope)
			if err != nil {
				return err
			}

			rankings, err := client.ListRankings(cmd.Context(), glapi.RankingFilter{
				Scope:  backendScope,
				Query:  query,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(rankings)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "seasonal", "Leaderboard scope: seasonal, monthly, all")
	cmd.Flags().StringVar(&query, "query", "", "Search by username")
	cmd.Flags().IntVar(&limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newRankingsUserCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "user <user-id>",
		Short: "Show one user's rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backendScope, err := scopeFromFlag(scope)
			if err != nil {
				return err
			}

			entry, err := client.GetUserRank(cmd.Context(), model.UserID(args[0]), backendScope)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "seasonal", "Leaderboard scope: seasonal, monthly, all")

	return cmd
}
