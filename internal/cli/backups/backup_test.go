package backups

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/gantt/internal/backup"
	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "gantt.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.AddCategory(models.Category{Name: "Ops"}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if _, err := store.AddTask(models.Task{
		CategoryID: 1,
		Name:       "Rotate keys",
		StartDate:  models.MustParseDate("2022-11-01"),
		EndDate:    models.MustParseDate("2022-11-02"),
	}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	return &cli.Context{Store: store}, store
}

func latestBackup(t *testing.T, store *sqlite.Store) string {
	t.Helper()
	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) == 0 {
		t.Fatal("no backups")
	}
	return backups[0].Path
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, store := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("list on empty directory failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	latestBackup(t, store)
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, store := setupTestDB(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	name := filepath.Base(latestBackup(t, store))

	if err := store.DeleteTask(1); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if _, err := store.GetTask(1); err != nil {
		t.Errorf("restored database is missing the task: %v", err)
	}
}

func TestBackupRestoreCancelled(t *testing.T) {
	ctx, store := setupTestDB(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	path := latestBackup(t, store)
	if err := store.DeleteTask(1); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	cmd := &BackupRestoreCmd{BackupFile: path, in: strings.NewReader("n\n")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("cancelled restore returned an error: %v", err)
	}
	if _, err := store.GetTask(1); err == nil {
		t.Error("cancelled restore changed the database")
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _ := setupTestDB(t)

	if err := (&BackupRestoreCmd{BackupFile: "gantt-20000101-000000.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}
