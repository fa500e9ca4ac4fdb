package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// assertFileExists fails the test if the file is missing.
func assertFileExists(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
		t.Errorf("expected file %q: %v", rel, err)
	}
}

// assertDirExists fails the test if the directory is missing.
func assertDirExists(t *testing.T, root, rel string) {
	t.Helper()
	info, err := os.Stat(filepath.Join(root, rel))
	if err != nil {
		t.Errorf("expected directory %q: %v", rel, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%q should be a directory", rel)
	}
}

// readFile reads a generated file or fails the test.
func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("failed to read %q: %v", rel, err)
	}
	return string(data)
}

// assertFileContains fails the test unless the file contains substr.
func assertFileContains(t *testing.T, root, rel, substr string) {
	t.Helper()
	content := readFile(t, root, rel)
	if !strings.Contains(content, substr) {
		t.Errorf("%q should contain %q", rel, substr)
	}
}
