// Package cli defines the mpsync command-line interface using cobra.
//
// The root command IS the deploy command -- running "mpsync" in a
// workspace scans it, maps every file through the configured path
// mappings, and copies the result onto the mounted device volume.
// Subcommands (resolve, reverse, dirs, mappings, devices, init, update)
// are registered separately.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/selim/mpsync/internal/config"
	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/upgrade"
)

// Version, Commit, and Date are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = &cobra.Command{
	Use:   "mpsync [flags]",
	Short: "Deploy workspace files onto a MicroPython device filesystem",
	Long: `mpsync copies a local workspace onto a MicroPython or CircuitPython
board mounted as a USB drive. An ordered list of path mappings in
mpsync.json decides where each file lands on the device; files outside
any mapping are placed directly under the configured root path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetCount("debug")
		verbose, _ := cmd.Flags().GetBool("verbose")
		applyVerbosity(quiet, debug, verbose)
	},
	RunE: runDeploy,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(upgrade.VersionString(Version, Commit, Date) + "\n")

	// --- Persistent flags (available to all subcommands) ---
	pf := rootCmd.PersistentFlags()
	pf.String("path", ".", "Workspace path")
	pf.String("root", "", "Device root path (overrides config rootPath)")
	pf.BoolP("yes", "y", false, "Unattended mode: skip the plan review")
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.BoolP("verbose", "v", false, "Verbose output (per-file copy detail)")
	pf.CountP("debug", "d", "Debug output (repeat for more detail)")

	// --- Local flags (root/deploy command only) ---
	f := rootCmd.Flags()
	f.StringP("chdir", "C", "", "Change to directory before running (like git -C)")
	f.BoolP("dry-run", "n", false, "Print the deployment plan without copying anything")
	f.String("device-volume", "", "Mount point of the device filesystem (overrides config)")

	// --- Subcommands ---
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(dirsCmd)
	rootCmd.AddCommand(mappingsCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(updateCmd)
}

// applyVerbosity resolves the log level from the output flags. Quiet
// beats everything; -d and -v raise the level; with no flag set, the
// global config's debug setting is the fallback.
func applyVerbosity(quiet bool, debug int, verbose bool) {
	switch {
	case quiet:
		log.EnableQuietMode()
	case debug > 0 || verbose:
		log.SetLevel(log.LevelDebug)
	case config.LoadGlobal().Debug > 0:
		log.SetLevel(log.LevelDebug)
	}
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
