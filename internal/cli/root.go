package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/gantt/internal/backup"
	"github.com/julianstephens/gantt/internal/config"
	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/storage"
	"github.com/julianstephens/gantt/internal/storage/sqlite"
	"github.com/julianstephens/gantt/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Config    *config.Config
	ChartPath string // chart.yaml
	ConfigDir string
	Now       func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// ChartConfig returns the loaded chart.yaml, or defaults.
func (c *Context) ChartConfig() *config.Config {
	if c.Config == nil {
		c.Config = config.Default()
	}
	return c.Config
}

// Today is the date the chart highlights and centers on.
func (c *Context) Today() (time.Time, error) {
	return c.ChartConfig().TodayDate(c.now())
}

// Range returns the configured chart range.
func (c *Context) Range() (start, end models.YearMonth, err error) {
	return c.ChartConfig().Range()
}

// LoadEngine builds a chart engine over the stored categories and tasks.
func (c *Context) LoadEngine() (*engine.Engine, error) {
	start, end, err := c.Range()
	if err != nil {
		return nil, err
	}
	today, err := c.Today()
	if err != nil {
		return nil, err
	}
	categories, err := c.Store.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	tasks, err := c.Store.GetAllTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return engine.New(engine.Options{Start: start, End: end, Today: today}, categories, tasks)
}

// Validate checks the stored collection against the chart range.
func (c *Context) Validate() (validation.Result, []models.Task, error) {
	start, end, err := c.Range()
	if err != nil {
		return validation.Result{}, nil, err
	}
	categories, err := c.Store.GetAllCategories()
	if err != nil {
		return validation.Result{}, nil, fmt.Errorf("failed to load categories: %w", err)
	}
	tasks, err := c.Store.GetAllTasks()
	if err != nil {
		return validation.Result{}, nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	v := validation.New().WithRange(start.FirstDay(), models.AddDays(end.AddMonths(1).FirstDay(), -1))
	return v.Validate(categories, tasks), tasks, nil
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	if _, err := backup.NewManager(c.Store.GetConfigPath()).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDateArg accepts YYYY-MM-DD or "today".
func (c *Context) ParseDateArg(s string) (time.Time, error) {
	if s == "today" {
		return c.Today()
	}
	return models.ParseDate(s)
}
