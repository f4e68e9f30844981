package sync

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/selim/mpsync/internal/mapping"
)

// FileOp is one planned copy: a workspace file and its device destination.
type FileOp struct {
	Local  string
	Device string
	Size   int64
}

// Plan is a full deployment: directories to create (parents first) and
// files to copy. Plans are value objects; building one touches no I/O.
type Plan struct {
	RootPath   string
	Dirs       []string
	Files      []FileOp
	TotalBytes int64
}

// BuildPlan maps every scanned file through the path mappings and
// derives the device directory set. Dirs is ordered shallowest-first,
// so executing the plan never creates a child before its parent.
func BuildPlan(files []File, rootPath string, rules []mapping.Rule) Plan {
	plan := Plan{RootPath: rootPath}

	locals := make([]string, 0, len(files))
	for _, f := range files {
		locals = append(locals, f.Rel)
		plan.Files = append(plan.Files, FileOp{
			Local:  f.Rel,
			Device: mapping.Apply(f.Rel, rootPath, rules),
			Size:   f.Size,
		})
		plan.TotalBytes += f.Size
	}

	plan.Dirs = mapping.DeviceDirectories(locals, rootPath, rules)
	return plan
}

// Empty reports whether the plan has nothing to do.
func (p Plan) Empty() bool {
	return len(p.Files) == 0 && len(p.Dirs) == 0
}

// Summary returns a one-line human description of the plan.
func (p Plan) Summary() string {
	return fmt.Sprintf("%d file(s), %s, %d directories",
		len(p.Files),
		units.HumanSize(float64(p.TotalBytes)),
		len(p.Dirs),
	)
}
