package cli

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/selim/mpsync/internal/config"
	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/paths"
	"github.com/selim/mpsync/internal/platform"
	"github.com/selim/mpsync/internal/review"
	"github.com/selim/mpsync/internal/sync"
)

// workspaceContext bundles everything a command derived from the
// workspace config: the resolved workspace, the store that produced the
// settings, and the settings with flag overrides already applied.
type workspaceContext struct {
	workspace string
	store     config.Store
	settings  config.Settings
}

// loadWorkspace validates --path, reads global and workspace config,
// and applies the persistent flag overrides.
func loadWorkspace(f *pflag.FlagSet) (workspaceContext, error) {
	path, _ := f.GetString("path")

	workspace, err := paths.ValidateWorkspacePath(path)
	if err != nil {
		return workspaceContext{}, err
	}

	store := config.NewFileStore(workspace)
	settings := config.Resolve(config.LoadGlobal(), store.Read())

	if root, _ := f.GetString("root"); root != "" {
		settings.RootPath = root
	}

	return workspaceContext{workspace: workspace, store: store, settings: settings}, nil
}

// runDeploy is the default action when no subcommand is given.
func runDeploy(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	// Change directory if --chdir/-C specified (like git -C)
	if chdir, _ := f.GetString("chdir"); chdir != "" {
		if err := os.Chdir(chdir); err != nil {
			return fmt.Errorf("cannot change to directory %q: %w", chdir, err)
		}
	}

	wc, err := loadWorkspace(f)
	if err != nil {
		return err
	}

	files, err := sync.Scan(wc.workspace, wc.settings.Ignore)
	if err != nil {
		return err
	}

	plan := sync.BuildPlan(files, wc.settings.RootPath, wc.settings.PathMappings)
	if plan.Empty() {
		log.Info("Nothing to deploy.")
		return nil
	}

	dryRun, _ := f.GetBool("dry-run")
	if dryRun {
		printPlan(plan)
		return nil
	}

	volume, err := resolveDeviceVolume(f, wc.settings)
	if err != nil {
		return err
	}

	yes, _ := f.GetBool("yes")
	if !yes && !log.IsQuiet() {
		confirmed, err := review.Run(plan, volume)
		if err != nil {
			return err
		}
		if !confirmed {
			log.Warn("Deployment cancelled.")
			return nil
		}
	}

	result, err := sync.Execute(plan, wc.workspace, volume)
	if err != nil {
		return err
	}

	log.Success(fmt.Sprintf("Deployed %d file(s) (%s) to %s",
		result.FilesCopied, units.HumanSize(float64(result.Bytes)), volume))
	return nil
}

// resolveDeviceVolume picks the target volume: flag, then config, then
// a single auto-detected candidate.
func resolveDeviceVolume(f *pflag.FlagSet, settings config.Settings) (string, error) {
	volume, _ := f.GetString("device-volume")
	if volume == "" {
		volume = settings.DeviceVolume
	}

	if volume == "" {
		candidates := platform.DeviceVolumeCandidates()
		switch len(candidates) {
		case 0:
			return "", fmt.Errorf("no device volume found; connect a board or pass --device-volume")
		case 1:
			volume = candidates[0]
			log.Dim("Using detected device volume: " + volume)
		default:
			return "", fmt.Errorf("multiple device volumes found (%v); pass --device-volume", candidates)
		}
	}

	return paths.ValidateDeviceVolume(volume)
}

// printPlan writes the plan to stdout without touching the device.
func printPlan(plan sync.Plan) {
	log.Bold("Deployment plan")
	log.Newline()

	for _, dir := range plan.Dirs {
		log.Raw("  " + log.Style.Cyan("mkdir") + " " + log.Style.Cyan(dir))
	}
	for _, op := range plan.Files {
		size := log.Style.Dim(fmt.Sprintf("  %s", units.HumanSize(float64(op.Size))))
		log.Raw("  copy  " + op.Device + size + log.Style.Dim("  (from "+op.Local+")"))
	}

	log.Newline()
	log.Dim(plan.Summary())
}
