package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	logger.Info("Starting TUI", "server", ctx.Config.ServerURL)

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Notifier), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
