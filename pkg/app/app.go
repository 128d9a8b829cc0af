// Package app is the interactive terminal front end, a prompt loop over the
// same generation pipeline the subcommands use.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/app/screens"
)

type Options struct {
	Threshold int
	Workers   int
	IndexPath string
	Logger    *slog.Logger
}

type App struct {
	opts Options
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (a *App) Run() error {
	model := screens.NewPromptScreen(a.opts.Threshold, a.opts.Workers, a.opts.IndexPath, a.opts.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
