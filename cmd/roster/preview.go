package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/config"
	"github.com/kingrea/duty-roster/internal/render"
	"github.com/kingrea/duty-roster/internal/roster"
	"github.com/kingrea/duty-roster/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the roster in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			p, err := buildPreview(cfg, logger)
			if err != nil {
				return err
			}
			return tui.Run(p, tea.WithAltScreen())
		},
	}
	flags.register(cmd)
	return cmd
}

func buildPreview(cfg *config.Config, log *zap.Logger) (tui.Preview, error) {
	plan, err := cfg.Plan()
	if err != nil {
		return tui.Preview{}, err
	}
	gen, err := roster.NewGenerator(plan)
	if err != nil {
		return tui.Preview{}, err
	}
	loc, matched := calendar.ResolveLocale(cfg.Language)
	if !matched && log != nil {
		log.Warn("unrecognized language, falling back to English", zap.String("language", cfg.Language))
	}

	term := render.Terminal{Locale: loc, Highlights: cfg.Highlights()}
	var rows [][]string
	for rec, span := range gen.Weeks() {
		rows = append(rows, term.Cells(rec, span))
	}
	title := fmt.Sprintf("Roster %d", plan.Year)
	return tui.NewPreview(title, render.LabelsFor(loc).Header(), rows), nil
}
