package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCommand(ctx *appContext) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with a previously exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			// Import replaces everything, so a non-empty vault needs an
			// explicit opt-in.
			if ctx.vault.Len() > 0 && !forceFlag {
				return fmt.Errorf("vault already holds %d entries; pass --force to replace them", ctx.vault.Len())
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			if err := ctx.vault.ImportSnapshot(data); err != nil {
				return err
			}

			fmt.Printf("Imported %d entries from %s\n", ctx.vault.Len(), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Replace existing entries without prompting")

	return cmd
}
