package cli

import (
	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User management commands",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersGetCmd())
	cmd.AddCommand(newUsersSetStatusCmd())
	cmd.AddCommand(newUsersSetRoleCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var query, status string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.ListUsers(cmd.Context(), glapi.UserFilter{
				Query:  query,
				Status: status,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(users)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search by username")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().IntVar(&limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newUsersGetCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.UserID(args[0])
			out := NewOutput(cfg.Output)

			user, err := client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			out.Print(*user)

			if full {
				// Sub-resources are best-effort
				if main, err := client.GetUserMain(cmd.Context(), id); err == nil {
					out.PrintMessage("Main:")
					out.Print(main)
				}
				if wallet, err := client.GetUserWallet(cmd.Context(), id); err == nil {
					out.PrintMessage("Wallet:")
					out.Print(wallet)
				}
				if sessions, err := client.GetUserSessions(cmd.Context(), id); err == nil {
					out.PrintMessage("Sessions:")
					out.Print(sessions)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Include main, wallet, and session sub-resources")

	return cmd
}

func newUsersSetStatusCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "set-status <user-id> <status>",
		Short: "Change a user's status (e.g. ban or unban)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.SetUserStatus(cmd.Context(), model.UserID(args[0]), args[1], reason)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*user)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Moderation reason")

	return cmd
}

func newUsersSetRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <user-id> <role>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.SetUserRole(cmd.Context(), model.UserID(args[0]), args[1])
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*user)
			return nil
		},
	}
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteUser(cmd.Context(), model.UserID(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("User deleted")
			return nil
		},
	}
}
