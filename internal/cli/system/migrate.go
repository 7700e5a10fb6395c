package system

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
)

type migrator interface {
	Migrate(logFn func(string)) (int, error)
	Pending() (int, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return fmt.Errorf("storage at %s does not support migrations", ctx.Store.GetConfigPath())
	}

	pending, err := m.Pending()
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if pending == 0 {
		fmt.Println("Database is up to date.")
		return nil
	}

	applied, err := m.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Printf("✓ Applied %d migration(s)\n", applied)
	return nil
}
