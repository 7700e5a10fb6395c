package tasks

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
)

// TaskShiftCmd moves a task, or only its start, by whole days. The change
// goes through the same gesture path as a drag on the chart.
type TaskShiftCmd struct {
	ID        int  `arg:"" help:"Task ID to shift."`
	Days      int  `arg:"" help:"Days to shift; negative is earlier (put negative values after --)."`
	StartOnly bool `name:"start-only" help:"Move only the start date, keeping the end."`
}

func (c *TaskShiftCmd) Run(ctx *cli.Context) error {
	eng, err := ctx.LoadEngine()
	if err != nil {
		return err
	}

	var saveErr error
	eng.SetSink(func(m engine.Mutation) {
		saveErr = ctx.Store.UpdateTask(m.After)
	})

	part := geometry.PartBody
	if c.StartOnly {
		part = geometry.PartLeftHandle
	}
	if err := eng.PointerDown(0, engine.Target{TaskID: c.ID, Part: part}); err != nil {
		return fmt.Errorf("failed to shift task %d: %w", c.ID, err)
	}
	commit, _, err := eng.PointerUp(c.Days * eng.BlockSize())
	if err != nil {
		return fmt.Errorf("failed to shift task %d: %w", c.ID, err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save task %d: %w", c.ID, saveErr)
	}

	if commit.Reverted {
		fmt.Printf("No change: %s (ID: %d)\n", commit.Before.Name, c.ID)
		return nil
	}
	fmt.Printf("Shifted task: %s (ID: %d) %s to %s\n", commit.After.Name, c.ID,
		models.FormatDate(commit.After.StartDate), models.FormatDate(commit.After.EndDate))
	return nil
}
