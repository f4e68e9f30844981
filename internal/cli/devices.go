package cli

import (
	"github.com/spf13/cobra"

	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/platform"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List mounted volumes that look like board filesystems",
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates := platform.DeviceVolumeCandidates()

		if len(candidates) == 0 {
			log.Dim("No device volumes found on " + platform.HostOSName() + ".")
			log.Dim("Boards running CircuitPython mount automatically; MicroPython boards may need pyboard mass storage enabled.")
			return nil
		}

		log.Bold("Detected device volumes")
		log.Newline()
		for _, volume := range candidates {
			log.Raw("  " + log.Style.Green(volume))
		}
		return nil
	},
}
