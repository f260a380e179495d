package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smymedia/mediavault/internal/vault"
)

func newExportCommand(ctx *appContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full collection to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			data, err := ctx.vault.ExportSnapshot()
			if err != nil {
				return fmt.Errorf("failed to serialize collection: %w", err)
			}

			path := outFlag
			if path == "" {
				path = vault.ExportFilename(time.Now())
			}

			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Printf("Exported %d entries to %s\n", ctx.vault.Len(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "Output path (default media-vault-<date>.json)")

	return cmd
}
