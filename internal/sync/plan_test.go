package sync

import (
	"reflect"
	"strings"
	"testing"

	"github.com/selim/mpsync/internal/mapping"
)

func TestBuildPlan(t *testing.T) {
	files := []File{
		{Rel: "src/main.py", Size: 100},
		{Rel: "src/lib/helper.py", Size: 50},
		{Rel: "boot.py", Size: 10},
	}
	rules := []mapping.Rule{{Local: "src", Device: "/"}}

	plan := BuildPlan(files, "/", rules)

	wantOps := []FileOp{
		{Local: "src/main.py", Device: "/main.py", Size: 100},
		{Local: "src/lib/helper.py", Device: "/lib/helper.py", Size: 50},
		{Local: "boot.py", Device: "/boot.py", Size: 10},
	}
	if !reflect.DeepEqual(plan.Files, wantOps) {
		t.Errorf("Files = %v, want %v", plan.Files, wantOps)
	}

	if !reflect.DeepEqual(plan.Dirs, []string{"/lib"}) {
		t.Errorf("Dirs = %v, want [/lib]", plan.Dirs)
	}

	if plan.TotalBytes != 160 {
		t.Errorf("TotalBytes = %d, want 160", plan.TotalBytes)
	}
}

func TestBuildPlanDirOrdering(t *testing.T) {
	files := []File{
		{Rel: "a/b/c/deep.py", Size: 1},
		{Rel: "a/top.py", Size: 1},
	}

	plan := BuildPlan(files, "/flash", nil)

	want := []string{"/flash", "/flash/a", "/flash/a/b", "/flash/a/b/c"}
	if !reflect.DeepEqual(plan.Dirs, want) {
		t.Errorf("Dirs = %v, want %v", plan.Dirs, want)
	}
}

func TestPlanEmpty(t *testing.T) {
	if !BuildPlan(nil, "/", nil).Empty() {
		t.Error("plan with no files should be empty")
	}

	plan := BuildPlan([]File{{Rel: "main.py", Size: 1}}, "/", nil)
	if plan.Empty() {
		t.Error("plan with a file should not be empty")
	}
}

func TestPlanSummary(t *testing.T) {
	plan := BuildPlan([]File{
		{Rel: "a/main.py", Size: 2048},
		{Rel: "a/other.py", Size: 1024},
	}, "/", nil)

	summary := plan.Summary()
	if !strings.Contains(summary, "2 file(s)") {
		t.Errorf("summary missing file count: %q", summary)
	}
	if !strings.Contains(summary, "kB") {
		t.Errorf("summary missing human-readable size: %q", summary)
	}
	if !strings.Contains(summary, "1 directories") {
		t.Errorf("summary missing directory count: %q", summary)
	}
}
