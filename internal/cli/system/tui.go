package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/lock"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	l, err := lock.Acquire(ctx.ConfigDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release session lock", "path", l.Path(), "error", err)
		}
	}()

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	eng, err := ctx.LoadEngine()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chart UI exited: %w", err)
	}
	return nil
}
