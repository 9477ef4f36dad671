package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLocal(t *testing.T) {
	t.Run("ValidDirectory", func(t *testing.T) {
		dir := t.TempDir()
		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatalf("NewLocal() error = %v", err)
		}
		defer backend.Close()

		if backend.Root() != dir {
			t.Errorf("Root() = %s, want %s", backend.Root(), dir)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := NewLocal(filepath.Join(t.TempDir(), "does-not-exist"))
		if err == nil {
			t.Fatal("NewLocal() should fail for missing directory")
		}
	})

	t.Run("NotADirectory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewLocal(file)
		if err == nil {
			t.Fatal("NewLocal() should fail for regular file")
		}
	})
}

func TestLocalList(t *testing.T) {
	ctx := context.Background()

	t.Run("DirectChildrenOnly", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
			t.Fatal(err)
		}
		// Files inside subdirectories must not appear in the listing
		if err := os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("n"), 0644); err != nil {
			t.Fatal(err)
		}

		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatal(err)
		}

		files, err := backend.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(files) != 2 {
			t.Fatalf("List() returned %d entries, want 2", len(files))
		}

		byName := make(map[string]FileInfo)
		for _, f := range files {
			byName[f.Name] = f
		}
		if f, ok := byName["a.txt"]; !ok || !f.IsRegular || f.IsDir {
			t.Errorf("a.txt entry = %+v, want regular file", f)
		}
		if f, ok := byName["sub"]; !ok || !f.IsDir {
			t.Errorf("sub entry = %+v, want directory", f)
		}
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		backend, err := NewLocal(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}

		files, err := backend.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("List() returned %d entries, want 0", len(files))
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
			t.Fatal(err)
		}

		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatal(err)
		}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := backend.List(cancelled); !errors.Is(err, context.Canceled) {
			t.Errorf("List() error = %v, want context.Canceled", err)
		}
	})
}

func TestLocalMove(t *testing.T) {
	ctx := context.Background()

	t.Run("MoveFile", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		dst := filepath.Join(dir, "dst.txt")
		if err := os.WriteFile(src, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}

		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatal(err)
		}

		if err := backend.Move(ctx, src, dst); err != nil {
			t.Fatalf("Move() error = %v", err)
		}

		if _, err := os.Stat(src); !os.IsNotExist(err) {
			t.Error("source should not exist after move")
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("failed to read destination: %v", err)
		}
		if string(data) != "content" {
			t.Errorf("destination content = %q, want %q", data, "content")
		}
	})

	t.Run("RefusesOverwrite", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		dst := filepath.Join(dir, "dst.txt")
		if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(dst, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatal(err)
		}

		err = backend.Move(ctx, src, dst)
		if !errors.Is(err, os.ErrExist) {
			t.Fatalf("Move() error = %v, want os.ErrExist", err)
		}

		// Source intact, destination content unmodified
		if data, _ := os.ReadFile(src); string(data) != "new" {
			t.Errorf("source content = %q, want %q", data, "new")
		}
		if data, _ := os.ReadFile(dst); string(data) != "existing" {
			t.Errorf("destination content = %q, want %q", data, "existing")
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		dir := t.TempDir()
		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatal(err)
		}

		err = backend.Move(ctx, filepath.Join(dir, "ghost.txt"), filepath.Join(dir, "dst.txt"))
		if err == nil {
			t.Fatal("Move() should fail for missing source")
		}
	})
}

func TestLocalMkdirAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "Images")
	if err := backend.MkdirAll(ctx, target); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	// Idempotent: second call must not error
	if err := backend.MkdirAll(ctx, target); err != nil {
		t.Fatalf("MkdirAll() second call error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Errorf("target should be a directory, err = %v", err)
	}
}

func TestLocalExists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}

	exists, err := backend.Exists(ctx, file)
	if err != nil || !exists {
		t.Errorf("Exists(present.txt) = %v, %v, want true, nil", exists, err)
	}

	exists, err = backend.Exists(ctx, filepath.Join(dir, "absent.txt"))
	if err != nil || exists {
		t.Errorf("Exists(absent.txt) = %v, %v, want false, nil", exists, err)
	}
}
