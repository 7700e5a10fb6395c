package tasks

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/tasklist"
)

type TaskListCmd struct {
	Deleted bool `help:"Include deleted tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}

	var tasks []models.Task
	if c.Deleted {
		tasks, err = ctx.Store.GetAllTasksIncludingDeleted()
	} else {
		tasks, err = ctx.Store.GetAllTasks()
	}
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	// Same grouping and order as the chart.
	flat := tasklist.Flatten(categories, tasks)
	for _, row := range flat.Rows {
		if row.Kind == models.RowCategory {
			fmt.Printf("%s (category %d)\n", row.Category.Name, row.Category.ID)
			continue
		}
		fmt.Println(formatTask(*row.Task))
	}
	if len(flat.Orphans) > 0 {
		fmt.Println("Without a category:")
		for _, t := range flat.Orphans {
			fmt.Println(formatTask(t))
		}
	}
	return nil
}

func formatTask(t models.Task) string {
	s := fmt.Sprintf("  [%d] %s  %s to %s  %3d%%", t.ID, t.Name,
		models.FormatDate(t.StartDate), models.FormatDate(t.EndDate), t.Percentage)
	if t.InchargeUser != "" {
		s += "  @" + t.InchargeUser
	}
	if t.DeletedAt != nil {
		s += "  (deleted)"
	}
	return s
}
