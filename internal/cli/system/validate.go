package system

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Swap inverted date ranges and clamp progress to 0-100."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result, tasks, err := ctx.Validate()
	if err != nil {
		return err
	}

	fmt.Println(result.FormatReport())
	if !c.Fix || !result.HasConflicts() {
		return nil
	}

	fixed, actions := validation.Fix(tasks, result)
	if len(actions) == 0 {
		fmt.Println("\nNothing to fix automatically.")
		return nil
	}
	for i := range fixed {
		if fixed[i] == tasks[i] {
			continue
		}
		if err := ctx.Store.UpdateTask(fixed[i]); err != nil {
			return fmt.Errorf("failed to save task %d: %w", fixed[i].ID, err)
		}
	}

	fmt.Println("\nApplied fixes:")
	for _, a := range actions {
		fmt.Printf("- %s\n", a.Action)
	}
	return nil
}
