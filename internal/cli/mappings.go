package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selim/mpsync/internal/log"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show the effective path mappings and device root",
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspace(cmd.Flags())
		if err != nil {
			return err
		}

		log.Bold("Device root: " + wc.settings.RootPath)
		log.Newline()

		rules := wc.settings.PathMappings
		if len(rules) == 0 {
			log.Dim("No path mappings configured; files deploy under the root as-is.")
			return nil
		}

		// Find max local prefix length for alignment.
		maxLocal := 0
		for _, rule := range rules {
			if len(rule.Local) > maxLocal {
				maxLocal = len(rule.Local)
			}
		}

		for i, rule := range rules {
			device := rule.Device
			if device == "" {
				device = "/"
			}
			local := log.Style.Cyan(fmt.Sprintf("%-*s", maxLocal+2, rule.Local))
			log.Raw(fmt.Sprintf("  %2d. %s-> %s", i+1, local, device))
		}

		log.Newline()
		log.Dim(fmt.Sprintf("%d mapping(s); first match wins", len(rules)))
		return nil
	},
}
