package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okmtz/tsk-cli/internal/model"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	cfg := model.Config{DataDir: t.TempDir()}
	cfg.Trash.Retention = 14
	return cfg
}

func TestLoadTasksInitializesEmptyFile(t *testing.T) {
	cfg := testConfig(t)

	tasks, jsonPath, err := LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to load tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("tasks.json was not created: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", string(data))
	}
}

func TestInsertTaskAssignsIdentifiers(t *testing.T) {
	cfg := testConfig(t)

	first, err := InsertTaskToJson(model.Task{Title: "buy milk", Status: model.StatusPending}, cfg)
	if err != nil {
		t.Fatalf("failed to insert task: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected a generated UUID")
	}
	if first.SeqID != 1 {
		t.Fatalf("expected seq id 1, got %d", first.SeqID)
	}

	second, err := InsertTaskToJson(model.Task{Title: "call the dentist", Status: model.StatusPending}, cfg)
	if err != nil {
		t.Fatalf("failed to insert second task: %v", err)
	}
	if second.SeqID != 2 {
		t.Fatalf("expected seq id 2, got %d", second.SeqID)
	}

	tasks, _, err := LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to reload tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks on disk, got %d", len(tasks))
	}
	if tasks[0].Title != "buy milk" || tasks[1].Title != "call the dentist" {
		t.Fatalf("tasks round-tripped out of order: %+v", tasks)
	}
}

func TestNextSeqIDSkipsGaps(t *testing.T) {
	tasks := []model.Task{
		{SeqID: 1},
		{SeqID: 7},
		{SeqID: 3},
	}
	if got := NextSeqID(tasks); got != 8 {
		t.Fatalf("expected next seq id 8, got %d", got)
	}
	if got := NextSeqID(nil); got != 1 {
		t.Fatalf("expected next seq id 1 for empty store, got %d", got)
	}
}

func TestFindTask(t *testing.T) {
	tasks := []model.Task{
		{ID: "aaaa1111-0000-0000-0000-000000000000", SeqID: 1, Title: "first"},
		{ID: "aaaa2222-0000-0000-0000-000000000000", SeqID: 2, Title: "second"},
		{ID: "bbbb3333-0000-0000-0000-000000000000", SeqID: 10, Title: "third"},
	}

	idx, err := FindTask(tasks, "10")
	if err != nil {
		t.Fatalf("failed to find by seq id: %v", err)
	}
	if tasks[idx].Title != "third" {
		t.Fatalf("expected third, got %q", tasks[idx].Title)
	}

	idx, err = FindTask(tasks, "bbbb")
	if err != nil {
		t.Fatalf("failed to find by uuid prefix: %v", err)
	}
	if tasks[idx].Title != "third" {
		t.Fatalf("expected third, got %q", tasks[idx].Title)
	}

	if _, err := FindTask(tasks, "aaaa"); err == nil {
		t.Fatal("expected ambiguous prefix error")
	}

	if _, err := FindTask(tasks, "99"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if _, err := FindTask(tasks, "bb"); err == nil {
		t.Fatal("expected error for too-short prefix")
	}
}

func TestCleanupTrashDropsExpiredTasks(t *testing.T) {
	cfg := testConfig(t)

	old := time.Now().Add(-30 * 24 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	tasks := []model.Task{
		{ID: "a", SeqID: 1, Title: "keep me", Status: model.StatusPending},
		{ID: "b", SeqID: 2, Title: "recently trashed", Deleted: true, DeletedAt: &recent},
		{ID: "c", SeqID: 3, Title: "long gone", Deleted: true, DeletedAt: &old},
	}
	jsonPath := filepath.Join(cfg.DataDir, "tasks.json")
	if err := SaveTasks(tasks, jsonPath); err != nil {
		t.Fatalf("failed to seed tasks: %v", err)
	}

	if err := CleanupTrash(cfg, 14*24*time.Hour); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	remaining, _, err := LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to reload tasks: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 tasks after cleanup, got %d", len(remaining))
	}
	for _, task := range remaining {
		if task.ID == "c" {
			t.Fatal("expired trashed task should have been removed")
		}
	}
}

func TestBackupAndCleanupBackups(t *testing.T) {
	cfg := testConfig(t)
	backupDir := filepath.Join(cfg.DataDir, "backup")

	_, jsonPath, err := LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to init tasks: %v", err)
	}

	if err := BackupTasks(jsonPath, backupDir); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("failed to read backup dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 backup file, got %d", len(entries))
	}

	stale := filepath.Join(backupDir, "tasks_20200101T000000.json")
	if err := os.WriteFile(stale, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to write stale backup: %v", err)
	}
	oldTime := time.Now().Add(-90 * 24 * time.Hour)
	if err := os.Chtimes(stale, oldTime, oldTime); err != nil {
		t.Fatalf("failed to age stale backup: %v", err)
	}

	if err := CleanupBackups(backupDir, 30*24*time.Hour); err != nil {
		t.Fatalf("backup cleanup failed: %v", err)
	}

	entries, err = os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("failed to re-read backup dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected stale backup removed, got %d files", len(entries))
	}
}
