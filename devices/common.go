package devices

import (
	"fmt"
	"time"
)

// ScreenSize is the device's physical resolution in pixels.
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ControllableDevice is the capability surface the drawing pipeline consumes.
type ControllableDevice interface {
	ID() string
	Name() string
	Platform() string   // e.g., "android"
	DeviceType() string // e.g., "real", "emulator"

	ScreenSize() (*ScreenSize, error)
	Swipe(x1, y1, x2, y2 int, duration time.Duration) error
	Tap(x, y int) error
}

// GetAllControllableDevices aggregates all known devices.
func GetAllControllableDevices() ([]ControllableDevice, error) {
	return GetAndroidDevices()
}

// DeviceInfo represents the JSON-friendly device information
type DeviceInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Type     string `json:"type"`
}

// GetDeviceInfoList returns a list of DeviceInfo for all connected devices
func GetDeviceInfoList() ([]DeviceInfo, error) {
	devices, err := GetAllControllableDevices()
	if err != nil {
		return nil, fmt.Errorf("error getting devices: %v", err)
	}

	deviceInfoList := make([]DeviceInfo, len(devices))
	for i, d := range devices {
		deviceInfoList[i] = DeviceInfo{
			ID:       d.ID(),
			Name:     d.Name(),
			Platform: d.Platform(),
			Type:     d.DeviceType(),
		}
	}

	return deviceInfoList, nil
}
