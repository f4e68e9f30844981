package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/selim/mpsync/internal/mapping"
)

func TestExecute(t *testing.T) {
	workspace := t.TempDir()
	volume := t.TempDir()
	writeTree(t, workspace, map[string]string{
		"src/main.py":       "print('main')",
		"src/lib/helper.py": "print('helper')",
		"boot.py":           "print('boot')",
	})

	files, err := Scan(workspace, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	plan := BuildPlan(files, "/", []mapping.Rule{{Local: "src", Device: "/"}})

	result, err := Execute(plan, workspace, volume)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.FilesCopied != 3 {
		t.Errorf("FilesCopied = %d, want 3", result.FilesCopied)
	}
	if result.DirsCreated != 1 {
		t.Errorf("DirsCreated = %d, want 1", result.DirsCreated)
	}

	checks := map[string]string{
		"main.py":       "print('main')",
		"lib/helper.py": "print('helper')",
		"boot.py":       "print('boot')",
	}
	for rel, want := range checks {
		data, err := os.ReadFile(filepath.Join(volume, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("missing %s on volume: %v", rel, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", rel, data, want)
		}
	}
}

func TestExecuteIdempotentDirs(t *testing.T) {
	workspace := t.TempDir()
	volume := t.TempDir()
	writeTree(t, workspace, map[string]string{
		"lib/a.py": "a",
	})

	files, err := Scan(workspace, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	plan := BuildPlan(files, "/", nil)

	if _, err := Execute(plan, workspace, volume); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	// Second run overwrites files and tolerates existing directories.
	result, err := Execute(plan, workspace, volume)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if result.DirsCreated != 0 {
		t.Errorf("DirsCreated on rerun = %d, want 0", result.DirsCreated)
	}
	if result.FilesCopied != 1 {
		t.Errorf("FilesCopied on rerun = %d, want 1", result.FilesCopied)
	}
}

func TestExecuteRootPathCreatesTree(t *testing.T) {
	workspace := t.TempDir()
	volume := t.TempDir()
	writeTree(t, workspace, map[string]string{
		"main.py": "x",
	})

	files, err := Scan(workspace, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	plan := BuildPlan(files, "/flash", nil)

	if _, err := Execute(plan, workspace, volume); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(volume, "flash", "main.py")); err != nil {
		t.Errorf("file not placed under root path: %v", err)
	}
}

func TestExecuteMissingSource(t *testing.T) {
	workspace := t.TempDir()
	volume := t.TempDir()

	plan := BuildPlan([]File{{Rel: "ghost.py", Size: 1}}, "/", nil)
	if _, err := Execute(plan, workspace, volume); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestHostPath(t *testing.T) {
	tests := []struct {
		name       string
		devicePath string
		want       string
	}{
		{"root file", "/main.py", filepath.Join("/vol", "main.py")},
		{"nested", "/lib/utils.py", filepath.Join("/vol", "lib", "utils.py")},
		{"device root", "/", "/vol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hostPath("/vol", tt.devicePath)
			if got != tt.want {
				t.Errorf("hostPath(%q) = %q, want %q", tt.devicePath, got, tt.want)
			}
		})
	}
}
