package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ugordi/gladialore-admin/internal/glapi"
)

func newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Media asset commands",
	}

	cmd.AddCommand(newMediaListCmd())
	cmd.AddCommand(newMediaAddCmd())
	cmd.AddCommand(newMediaUploadCmd())

	return cmd
}

func newMediaListCmd() *cobra.Command {
	var query, kind string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List media assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := client.ListMedia(cmd.Context(), glapi.MediaFilter{
				Query:  query,
				Kind:   kind,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(assets)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search by name")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (image, animation)")
	cmd.Flags().IntVar(&limit, "limit", 25, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newMediaAddCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Register an externally hosted asset by URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := client.CreateMediaAsset(cmd.Context(), args[0], kind)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*asset)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "image", "Asset kind (image, animation)")

	return cmd
}

func newMediaUploadCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			filename := filepath.Base(args[0])
			extra := map[string]string{"filename": filename, "kind": kind}

			asset, err := client.UploadMedia(cmd.Context(), filename, file, extra)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(*asset)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "image", "Asset kind (image, animation)")

	return cmd
}
