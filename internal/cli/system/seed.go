package system

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/sample"
)

// SeedCmd loads the demo chart into an empty database.
type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	return seed(ctx)
}

func seed(ctx *cli.Context) error {
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasksIncludingDeleted()
	if err != nil {
		return err
	}
	if len(categories) > 0 || len(tasks) > 0 {
		return fmt.Errorf("chart already has %d categories and %d tasks; seed only loads into an empty database", len(categories), len(tasks))
	}

	for _, c := range sample.Categories() {
		if _, err := ctx.Store.AddCategory(c); err != nil {
			return fmt.Errorf("failed to add category %q: %w", c.Name, err)
		}
	}
	for _, t := range sample.Tasks() {
		if _, err := ctx.Store.AddTask(t); err != nil {
			return fmt.Errorf("failed to add task %q: %w", t.Name, err)
		}
	}
	fmt.Printf("Loaded demo chart: %d categories, %d tasks\n", len(sample.Categories()), len(sample.Tasks()))
	return nil
}
