package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterWriteFile(t *testing.T) {
	tempDir := t.TempDir()
	w := NewFileWriter()

	path := filepath.Join(tempDir, "sub", "dir", "file.txt")
	content := []byte("hello")

	if err := w.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}

	// No leftover temp file
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should have been renamed away")
	}
}

func TestFileWriterOverwrite(t *testing.T) {
	tempDir := t.TempDir()
	w := NewFileWriter()

	path := filepath.Join(tempDir, "file.txt")
	if err := w.WriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestFileWriterZeroModeDefaults(t *testing.T) {
	tempDir := t.TempDir()
	w := NewFileWriter()

	path := filepath.Join(tempDir, "file.txt")
	if err := w.WriteFile(path, []byte("x"), 0); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %o, want 0644", info.Mode().Perm())
	}
}

func TestFileWriterCreateDir(t *testing.T) {
	tempDir := t.TempDir()
	w := NewFileWriter()

	path := filepath.Join(tempDir, "a", "b", "c")
	if err := w.CreateDir(path); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("created path should be a directory")
	}

	// Pre-existing directory is not an error
	if err := w.CreateDir(path); err != nil {
		t.Errorf("CreateDir on existing directory failed: %v", err)
	}
}

func TestFileWriterExists(t *testing.T) {
	tempDir := t.TempDir()
	w := NewFileWriter()

	path := filepath.Join(tempDir, "file.txt")
	if w.Exists(path) {
		t.Error("Exists should be false before writing")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}
	if !w.Exists(path) {
		t.Error("Exists should be true after writing")
	}
}
