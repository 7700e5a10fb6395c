package tasks

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/models"
)

type TaskAddCmd struct {
	Name     string `arg:"" help:"Task name."`
	Category int    `short:"c" help:"Category ID." required:""`
	Start    string `short:"s" help:"Start date (YYYY-MM-DD or 'today')." default:"today"`
	End      string `short:"e" help:"End date (YYYY-MM-DD or 'today'). Defaults to the start date."`
	Assignee string `short:"a" help:"Person in charge."`
	Progress int    `short:"p" help:"Progress percentage (0-100)." default:"0"`
}

func (c *TaskAddCmd) Validate() error {
	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetCategory(c.Category); err != nil {
		return fmt.Errorf("failed to find category with ID %d: %w", c.Category, err)
	}

	start, err := ctx.ParseDateArg(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end := start
	if c.End != "" {
		if end, err = ctx.ParseDateArg(c.End); err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
	}

	task := models.Task{
		CategoryID:   c.Category,
		Name:         c.Name,
		StartDate:    start,
		EndDate:      end,
		InchargeUser: c.Assignee,
		Percentage:   c.Progress,
	}
	if !task.Valid() {
		return fmt.Errorf("start date %s is after end date %s", models.FormatDate(start), models.FormatDate(end))
	}

	task, err = ctx.Store.AddTask(task)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %d)\n", task.Name, task.ID)
	return nil
}
