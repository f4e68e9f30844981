package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/selim/mpsync/internal/config"
	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/mapping"
	"github.com/selim/mpsync/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter mpsync.json to the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path, _ := cmd.Flags().GetString("path")
		workspace, err := paths.ValidateWorkspacePath(path)
		if err != nil {
			return err
		}

		target := filepath.Join(workspace, config.DefaultConfigFile)
		if _, err := os.Stat(target); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}

		store := config.NewFileStore(workspace)
		starter := config.ProjectConfig{
			Name:     filepath.Base(workspace),
			RootPath: config.DefaultRootPath,
			PathMappings: []mapping.Rule{
				{Local: "src", Device: "/"},
			},
			Ignore: config.DefaultIgnore,
		}

		if err := store.Write(starter); err != nil {
			return err
		}

		log.Success("Wrote " + target)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")
}
