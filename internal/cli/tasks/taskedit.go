package tasks

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/models"
)

// TaskEditCmd changes only the fields that are given.
type TaskEditCmd struct {
	ID       int     `arg:"" help:"Task ID to edit."`
	Name     *string `short:"n" help:"New name."`
	Category *int    `short:"c" help:"New category ID."`
	Start    *string `short:"s" help:"New start date (YYYY-MM-DD or 'today')."`
	End      *string `short:"e" help:"New end date (YYYY-MM-DD or 'today')."`
	Assignee *string `short:"a" help:"New person in charge."`
	Progress *int    `short:"p" help:"New progress percentage (0-100)."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Progress != nil && (*c.Progress < 0 || *c.Progress > 100) {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task with ID %d: %w", c.ID, err)
	}

	if c.Name != nil {
		task.Name = *c.Name
	}
	if c.Category != nil {
		if _, err := ctx.Store.GetCategory(*c.Category); err != nil {
			return fmt.Errorf("failed to find category with ID %d: %w", *c.Category, err)
		}
		task.CategoryID = *c.Category
	}
	if c.Start != nil {
		if task.StartDate, err = ctx.ParseDateArg(*c.Start); err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
	}
	if c.End != nil {
		if task.EndDate, err = ctx.ParseDateArg(*c.End); err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
	}
	if c.Assignee != nil {
		task.InchargeUser = *c.Assignee
	}
	if c.Progress != nil {
		task.Percentage = *c.Progress
	}

	if !task.Valid() {
		return fmt.Errorf("start date %s is after end date %s", models.FormatDate(task.StartDate), models.FormatDate(task.EndDate))
	}
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Updated task: %s (ID: %d)\n", task.Name, task.ID)
	return nil
}
