package cli

import (
	"fmt"

	"github.com/sketchdroid/sketchcli/commands"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw an image on a device as touch swipes",
	Long: `Converts an image into horizontal swipe gestures and replays them on the
connected device. Open a drawing app with an empty canvas before starting;
drawing begins after a short delay and cannot be undone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.DrawRequest{
			DeviceID:      deviceId,
			ImagePath:     drawImagePath,
			RowStride:     drawRowStride,
			SwipeDuration: drawSwipeDuration,
			LineInterval:  drawLineInterval,
		}

		response := commands.DrawCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	// draw command flags
	drawCmd.Flags().StringVar(&deviceId, "device", "", "ID of the device to draw on")
	drawCmd.Flags().StringVar(&drawImagePath, "image", "", "path to the image (default: image.png or image.jpg in the working directory)")
	drawCmd.Flags().IntVar(&drawRowStride, "stride", 0, "draw every n-th row (default 5)")
	drawCmd.Flags().DurationVar(&drawSwipeDuration, "swipe-duration", 0, "duration of each swipe (default 150ms)")
	drawCmd.Flags().DurationVar(&drawLineInterval, "interval", 0, "pause between swipes (default 200ms)")
}
