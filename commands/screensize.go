package commands

import (
	"fmt"
)

// ScreenSizeRequest represents the parameters for a screensize command
type ScreenSizeRequest struct {
	DeviceID string `json:"deviceId"`
}

// ScreenSizeCommand reports the physical resolution of the specified device
func ScreenSizeCommand(req ScreenSizeRequest) *CommandResponse {
	targetDevice, err := FindDeviceOrAutoSelect(req.DeviceID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error finding device: %v", err))
	}

	size, err := targetDevice.ScreenSize()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to get screen size for device %s: %v", targetDevice.ID(), err))
	}

	return NewSuccessResponse(size)
}
