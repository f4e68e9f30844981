package cli

import (
	"github.com/spf13/cobra"

	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/mapping"
	"github.com/selim/mpsync/internal/sync"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <local-path>",
	Short: "Print the device path a workspace file maps to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspace(cmd.Flags())
		if err != nil {
			return err
		}

		device := mapping.Apply(args[0], wc.settings.RootPath, wc.settings.PathMappings)
		log.Raw(device)
		return nil
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <device-path>",
	Short: "Print the workspace path a device file maps back to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspace(cmd.Flags())
		if err != nil {
			return err
		}

		local := mapping.Reverse(args[0], wc.settings.RootPath, wc.settings.PathMappings)
		log.Raw(local)
		return nil
	},
}

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List the device directories the workspace needs, parents first",
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspace(cmd.Flags())
		if err != nil {
			return err
		}

		files, err := sync.Scan(wc.workspace, wc.settings.Ignore)
		if err != nil {
			return err
		}

		locals := make([]string, 0, len(files))
		for _, f := range files {
			locals = append(locals, f.Rel)
		}

		dirs := mapping.DeviceDirectories(locals, wc.settings.RootPath, wc.settings.PathMappings)
		if len(dirs) == 0 {
			log.Dim("No directories needed; everything maps to the device root.")
			return nil
		}
		for _, dir := range dirs {
			log.Raw(dir)
		}
		return nil
	},
}
