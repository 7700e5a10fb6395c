package chart

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/config"
	"github.com/julianstephens/gantt/internal/export"
	"github.com/julianstephens/gantt/internal/models"
)

// CalendarCmd prints the month blocks of the configured range.
type CalendarCmd struct{}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.Range()
	if err != nil {
		return err
	}
	blocks, err := calendar.Build(start, end)
	if err != nil {
		return err
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		weekend := 0
		for _, d := range b.Days {
			if d.DayOfWeek == time.Saturday || d.DayOfWeek == time.Sunday {
				weekend++
			}
		}
		fmt.Printf("%s  %2d days  blocks %3d-%3d  %d weekend days\n",
			b.Label, b.DayCount, b.StartBlockNumber, b.StartBlockNumber+b.DayCount-1, weekend)
	}
	fmt.Printf("\n%d days total\n", calendar.TotalDays(blocks))
	if calendar.Contains(blocks, start, today) {
		fmt.Printf("Today (%s) is block %d\n", models.FormatDate(today), calendar.BlockOf(start, today))
	} else {
		fmt.Printf("Today (%s) is outside the chart\n", models.FormatDate(today))
	}
	return nil
}

// RangeCmd shows or changes the chart range in chart.yaml.
type RangeCmd struct {
	Start string `arg:"" optional:"" help:"First month (YYYY-MM)."`
	End   string `arg:"" optional:"" help:"Last month (YYYY-MM)."`
}

func (c *RangeCmd) Run(ctx *cli.Context) error {
	cfg := ctx.ChartConfig()
	if c.Start == "" && c.End == "" {
		fmt.Printf("%s to %s\n", cfg.StartMonth, cfg.EndMonth)
		return nil
	}
	if c.Start == "" || c.End == "" {
		return fmt.Errorf("both start and end months are required")
	}

	start, err := models.ParseYearMonth(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start month: %w", err)
	}
	end, err := models.ParseYearMonth(c.End)
	if err != nil {
		return fmt.Errorf("invalid end month: %w", err)
	}
	if _, err := calendar.Build(start, end); err != nil {
		return err
	}

	cfg.StartMonth, cfg.EndMonth = start.String(), end.String()
	if err := config.Save(ctx.ChartPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Chart range set to %s to %s\n", cfg.StartMonth, cfg.EndMonth)
	return nil
}

type ExportCmd struct {
	Output string `short:"o" help:"Output file." default:"chart.svg" type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	start, end, err := ctx.Range()
	if err != nil {
		return err
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	stats, err := export.SVG(f, export.Options{
		Start:      start,
		End:        end,
		Today:      today,
		Categories: categories,
		Tasks:      tasks,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(c.Output)
		return err
	}

	fmt.Printf("✓ Exported %d rows over %d days to %s (%dx%d)\n", stats.Rows, stats.Days, c.Output, stats.Width, stats.Height)
	if stats.Orphans > 0 {
		fmt.Printf("  %d task(s) without a category were left out\n", stats.Orphans)
	}
	return nil
}
