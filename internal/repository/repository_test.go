package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/CalistaIo/ip/internal/model"
)

func sampleTasks() []model.Task {
	done := model.NewDeadline("return book", "Dec 2 2024 6.00pm")
	done.MarkDone()
	return []model.Task{
		model.NewToDo("read book"),
		done,
		model.NewEvent("project meeting", "Jan 15 2025"),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tasks.txt")
	store := NewFileStore(path)

	tasks, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty list, got %d tasks", len(tasks))
	}

	want := sampleTasks()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	expected := "T | 0 | read book\nD | 1 | return book | Dec 2 2024 6.00pm\nE | 0 | project meeting | Jan 15 2025\n"
	if string(content) != expected {
		t.Errorf("Expected file content %q, got %q", expected, string(content))
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("Save of empty list failed: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty list after saving nothing, got %d", len(got))
	}
}

func TestFileStoreRejectsCorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("T | 0 | fine\nnonsense\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := NewFileStore(path).Load(context.Background())
	if err == nil {
		t.Fatal("Expected error for corrupt line")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Errorf("Expected error to name line 2, got %v", err)
	}
}

func TestTaskRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(filepath.Join(t.TempDir(), "db", "tasks.db"), io.Discard)
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { CloseDB(db) })

	repo := NewTaskRepository(db)

	want := sampleTasks()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// A second save replaces the rows instead of appending.
	if err := repo.Save(ctx, want[:1]); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	var n int64
	if err := repo.db.Model(&model.TaskRecord{}).Count(&n).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 row, got %d", n)
	}

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save of empty list failed: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no tasks, got %d", len(got))
	}
}

func TestEnsureDirForSQLite(t *testing.T) {
	root := t.TempDir()
	dsn := "file:" + filepath.Join(root, "a", "b", "tasks.db") + "?cache=shared"
	if err := ensureDirForSQLite(dsn); err != nil {
		t.Fatalf("ensureDirForSQLite failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(root, "a", "b")); err != nil || !info.IsDir() {
		t.Errorf("Expected directory to exist, got %v", err)
	}

	for _, dsn := range []string{":memory:", "file::memory:?cache=shared", "tasks.db"} {
		if err := ensureDirForSQLite(dsn); err != nil {
			t.Errorf("ensureDirForSQLite(%q) failed: %v", dsn, err)
		}
	}
}
