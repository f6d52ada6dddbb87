package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
)

var (
	cfg    *Config
	client *glapi.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gladmin",
		Short: "CLI tool for the Gladialore admin API",
		Long: `gladmin drives the Gladialore game backend's admin API from the
command line: user moderation, region and enemy design, item templates,
media, rankings, and game settings.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadTokens(); err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			client = glapi.New(glapi.Config{
				BaseURL: cfg.ServerURL,
				Timeout: 20 * time.Second,
				Logger:  logger,
			}, &fileTokens{cfg: cfg})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Backend API base URL (env: GLADMIN_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Access token (env: GLADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: GLADMIN_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newRegionsCmd())
	rootCmd.AddCommand(newEnemiesCmd())
	rootCmd.AddCommand(newItemsCmd())
	rootCmd.AddCommand(newMediaCmd())
	rootCmd.AddCommand(newRankingsCmd())
	rootCmd.AddCommand(newSettingsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
