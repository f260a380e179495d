package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smymedia/mediavault/internal/config"
	"github.com/smymedia/mediavault/internal/log"
	"github.com/smymedia/mediavault/internal/lookup"
	"github.com/smymedia/mediavault/internal/query"
	"github.com/smymedia/mediavault/internal/store"
	"github.com/smymedia/mediavault/internal/tui"
	"github.com/smymedia/mediavault/internal/vault"
)

// appContext wires the shared dependencies for every subcommand.
type appContext struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.VaultStore
	vault  *vault.Service
}

// open loads config, logging, the store, and the vault collection.
func (a *appContext) open() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to a silent logger rather than refusing to start
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	a.logger = logger

	st, err := store.Open(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to open vault store: %w", err)
	}
	a.store = st

	a.vault = vault.NewService(st, logger)
	a.vault.LoadAll()
	return nil
}

func (a *appContext) close() {
	if a.store != nil {
		a.store.Close()
	}
}

func newRootCommand() *cobra.Command {
	ctx := &appContext{}

	rootCmd := &cobra.Command{
		Use:           "mediavault",
		Short:         "Personal media catalog",
		Long:          "MediaVault tracks links to movies, series, books, games and more in a local vault.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx)
		},
	}

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))

	return rootCmd
}

func runTUI(ctx *appContext) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use the list/stats/export subcommands for scripting")
	}

	if err := ctx.open(); err != nil {
		return err
	}
	defer ctx.close()

	ctx.logger.Info("starting mediavault", "version", Version)

	client := lookup.NewClient(ctx.cfg.Lookup.TMDBAPIKey, ctx.logger)

	model := tui.NewModel(
		ctx.vault,
		ctx.store,
		client,
		ctx.cfg.UI.PageSize,
		query.GroupPeriod(ctx.cfg.UI.GroupBy),
		ctx.cfg.UI.DefaultView,
		ctx.logger,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ctx.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	ctx.logger.Info("shutting down")
	return nil
}
