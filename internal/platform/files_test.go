package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory should exist after creation: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("CreateDirectoryIfNotExists on existing dir failed: %v", err)
	}
}

func TestGetHomeExportDir(t *testing.T) {
	dir, err := GetHomeExportDir()
	if err != nil {
		t.Fatalf("GetHomeExportDir failed: %v", err)
	}

	if !strings.HasSuffix(dir, DefaultExportFolder) {
		t.Errorf("Export dir %q should end with %q", dir, DefaultExportFolder)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	if !strings.HasPrefix(dir, home) {
		t.Errorf("Export dir %q should live under home %q", dir, home)
	}
}

func TestOpenFileInManagerMissingFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Error("OpenFileInManager should fail for a missing file")
	}
}

func TestOpenFileWithDefaultAppMissingFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Error("OpenFileWithDefaultApp should fail for a missing file")
	}
}
