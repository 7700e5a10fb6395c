package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/gantt/internal/backup"
	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/lock"
	"github.com/julianstephens/gantt/internal/storage/sqlite"
	"github.com/julianstephens/gantt/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// needsDB checks are skipped when the database cannot be loaded.
	needsDB bool
	// warn checks report a warning instead of failing the run.
	warn bool
}

var checks = []check{
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Chart range", run: checkChartRange},
	{name: "Data validation", run: checkValidation, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warn: true},
	{name: "Session lock", run: checkSessionLock, warn: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return nil
	}
	pending, err := m.Pending()
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if pending > 0 {
		return fmt.Errorf("%d migration(s) pending, run 'gantt migrate'", pending)
	}
	return nil
}

func checkChartRange(ctx *cli.Context) error {
	start, end, err := ctx.Range()
	if err != nil {
		return err
	}
	_, err = calendar.Build(start, end)
	return err
}

func checkValidation(ctx *cli.Context) error {
	result, _, err := ctx.Validate()
	if err != nil {
		return err
	}
	if !result.HasConflicts() {
		return nil
	}
	// Tasks outside the range are still drawn, clipped; everything else is a data problem.
	problems := len(result.Conflicts) - len(result.Of(validation.ConflictOutsideChartRange))
	if problems == 0 {
		return nil
	}
	return fmt.Errorf("%d conflict(s) found, run 'gantt validate' for details", problems)
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'gantt backup create'")
	}
	return nil
}

func checkSessionLock(ctx *cli.Context) error {
	if ctx.ConfigDir == "" {
		return nil
	}
	l, err := lock.Acquire(ctx.ConfigDir)
	if err != nil {
		return err
	}
	return l.Release()
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
