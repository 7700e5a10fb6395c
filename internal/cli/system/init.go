package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/config"
	"github.com/julianstephens/gantt/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool `help:"Force reset by deleting an existing SQLite database before initialization."`
	Sample bool `help:"Load the demo chart after initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, ok := ctx.Store.(*sqlite.Store); !ok {
			return errors.New("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized gantt storage at: %s\n", ctx.Store.GetConfigPath())

	if ctx.ChartPath != "" {
		if _, err := os.Stat(ctx.ChartPath); os.IsNotExist(err) {
			if err := config.Save(ctx.ChartPath, ctx.ChartConfig()); err != nil {
				return err
			}
			fmt.Printf("Wrote chart config to: %s\n", ctx.ChartPath)
		}
	}

	if c.Sample {
		return seed(ctx)
	}
	return nil
}
