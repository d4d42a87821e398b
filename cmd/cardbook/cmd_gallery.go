package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/cardbook/cmd/cardbook/tui"
	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/commands"
	"github.com/ruminaider/cardbook/internal/gallery"
	"github.com/spf13/cobra"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Open the interactive card gallery",
	Long:  "gallery opens a full-screen card browser. The data file is watched and the gallery refreshes when it changes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd)
		if err != nil {
			return err
		}

		store, err := appdata.Open(e.cfg.DataFile, e.logger)
		if err != nil {
			return err
		}
		updates, unsubscribe := store.Subscribe()
		defer unsubscribe()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := store.Watch(ctx); err != nil {
				e.logger.Warn("watching card data failed", slog.String("error", err.Error()))
			}
		}()

		p := gallery.NewPipeline(e.taxonomy, e.galleryOptions())
		if err := presetFilters(cmd, p); err != nil {
			return err
		}

		model := tui.NewModel(p, store, updates)
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	},
}

// presetFilters applies any filter flags to p before the gallery opens.
func presetFilters(cmd *cobra.Command, p *gallery.Pipeline) error {
	var opts commands.ListOptions
	readListFlags(cmd, &opts)
	if err := commands.ValidateBonusType(p.Taxonomy(), opts.BonusType); err != nil {
		return err
	}

	commands.Settle(p, p.SetBonusType(opts.BonusType))
	if opts.PassiveOnly {
		commands.Settle(p, p.SetPassiveOnly(true))
	}
	if opts.ActiveOnly {
		commands.Settle(p, p.SetActiveOnly(true))
	}
	commands.Settle(p, p.SetInput(opts.Search))
	return nil
}

func init() {
	addFilterFlags(galleryCmd)
}
