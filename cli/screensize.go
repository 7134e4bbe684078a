package cli

import (
	"fmt"

	"github.com/sketchdroid/sketchcli/commands"
	"github.com/spf13/cobra"
)

var screenSizeCmd = &cobra.Command{
	Use:   "screensize",
	Short: "Show a device's physical screen resolution",
	Long:  `Queries the specified device for its physical screen resolution in pixels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.ScreenSizeRequest{
			DeviceID: deviceId,
		}

		response := commands.ScreenSizeCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(screenSizeCmd)

	// screensize command flags
	screenSizeCmd.Flags().StringVar(&deviceId, "device", "", "ID of the device to query")
}
