package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GetTestDataPath returns the absolute path of the nearest testdata/ directory
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// LoadFixture reads testdata/fixtures/<name> with surrounding whitespace trimmed
func LoadFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(GetTestDataPath(), "fixtures", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return strings.TrimSpace(string(data))
}

// WriteTemp writes content to a file under t.TempDir and returns its path
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}
