package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MuhamadTAH/psychology-sub002/internal/config"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := OpenSQL(context.Background(), config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testBlockStore(t *testing.T, s BlockStore) {
	t.Helper()
	ctx := context.Background()

	// Nothing stored yet.
	if _, err := s.Load(ctx, "lessons"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("load (empty) error = %v, want ErrBlockNotFound", err)
	}

	if err := s.Save(ctx, "lessons", []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx, "lessons")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("load = %q, want %q", got, "first")
	}

	// Save replaces the whole block.
	if err := s.Save(ctx, "lessons", []byte("second")); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = s.Load(ctx, "lessons")
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("load = %q, want %q", got, "second")
	}

	// Blocks are independent.
	if _, err := s.Load(ctx, "other"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("load other error = %v, want ErrBlockNotFound", err)
	}
}

func TestSQLStore(t *testing.T) {
	testBlockStore(t, openTestStore(t))
}

func TestFileStore(t *testing.T) {
	testBlockStore(t, NewFileStore(t.TempDir()))
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	if err := s.Save(context.Background(), "lessons", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	hidden, _ := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if len(matches)+len(hidden) != 0 {
		t.Errorf("temp files left behind: %v %v", matches, hidden)
	}
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	s := NewFileStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		if err := s.Save(context.Background(), name, []byte("x")); err == nil {
			t.Errorf("save %q: expected error", name)
		}
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), config.DriverFile, dir)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open(file) = %T, want *FileStore", s)
	}

	sqlitePath := filepath.Join(dir, "lessons.db")
	s, err = Open(context.Background(), config.DriverSQLite, sqlitePath)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer s.Close()
	testBlockStore(t, s)

	if _, err := Open(context.Background(), "mongo", ""); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestDefaultStorePath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultStorePath(config.DriverFile)
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(dataHome, "lessonctl", "lessons"); p != want {
		t.Errorf("file path = %q, want %q", p, want)
	}

	p, err = DefaultStorePath(config.DriverSQLite)
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(dataHome, "lessonctl", "lessons.db"); p != want {
		t.Errorf("sqlite path = %q, want %q", p, want)
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("expected parent dir to exist: %v", err)
	}
}
