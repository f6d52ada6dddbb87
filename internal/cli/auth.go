package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthRefreshCmd())
	cmd.AddCommand(newAuthMeCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin API and store the tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := client.Login(cmd.Context(), user, pass)
			if err != nil {
				return err
			}

			if err := cfg.SaveTokens(tokens); err != nil {
				return fmt.Errorf("failed to save tokens: %w", err)
			}

			// Best-effort audit trail
			_ = client.AuditLogin(cmd.Context(), map[string]string{"panel": "cli"})

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged in as " + user)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Admin username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the refresh token and remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if refresh := cfg.RefreshToken(); refresh != "" {
				if err := client.Logout(cmd.Context(), refresh); err != nil {
					// Local teardown still happens
					out.PrintError(fmt.Errorf("backend logout failed: %w", err))
				}
			}

			if err := cfg.ClearTokens(); err != nil {
				return err
			}

			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newAuthRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the stored refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh := cfg.RefreshToken()
			if refresh == "" {
				return fmt.Errorf("no refresh token stored; run `gladmin auth login`")
			}

			tokens, err := client.Refresh(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			if err := cfg.SaveTokens(tokens); err != nil {
				return fmt.Errorf("failed to save tokens: %w", err)
			}

			NewOutput(cfg.Output).PrintMessage("Access token refreshed")
			return nil
		},
	}
}

func newAuthMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(profile)
			return nil
		},
	}
}
