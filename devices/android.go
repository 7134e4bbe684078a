package devices

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// AndroidDevice implements the ControllableDevice interface for Android devices
type AndroidDevice struct {
	id   string
	name string
}

func (d AndroidDevice) ID() string {
	return d.id
}

func (d AndroidDevice) Name() string {
	return d.name
}

func (d AndroidDevice) Platform() string {
	return "android"
}

func (d AndroidDevice) DeviceType() string {
	if strings.HasPrefix(d.id, "emulator-") {
		return "emulator"
	} else {
		return "real"
	}
}

func (d AndroidDevice) runAdbCommand(args ...string) ([]byte, error) {
	cmdArgs := append([]string{"-s", d.id}, args...)
	cmd := exec.Command("adb", cmdArgs...)
	return cmd.CombinedOutput()
}

// ScreenSize queries the device's physical resolution via `wm size`.
func (d AndroidDevice) ScreenSize() (*ScreenSize, error) {
	output, err := d.runAdbCommand("shell", "wm", "size")
	if err != nil {
		return nil, fmt.Errorf("failed to query screen size: %v\nOutput: %s", err, string(output))
	}

	return parseWmSizeOutput(string(output))
}

// parseWmSizeOutput extracts the resolution from `wm size` output, e.g.
// "Physical size: 1080x2400".
func parseWmSizeOutput(output string) (*ScreenSize, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Physical size:") {
			continue
		}

		dims := strings.TrimSpace(strings.TrimPrefix(line, "Physical size:"))
		parts := strings.Split(dims, "x")
		if len(parts) != 2 {
			break
		}

		width, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
		height, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errW != nil || errH != nil || width <= 0 || height <= 0 {
			break
		}

		return &ScreenSize{Width: width, Height: height}, nil
	}

	return nil, fmt.Errorf("could not parse screen size from wm output: %q", strings.TrimSpace(output))
}

// Swipe simulates a touch swipe from (x1,y1) to (x2,y2) over the given duration.
func (d AndroidDevice) Swipe(x1, y1, x2, y2 int, duration time.Duration) error {
	output, err := d.runAdbCommand("shell", "input", "swipe",
		strconv.Itoa(x1), strconv.Itoa(y1),
		strconv.Itoa(x2), strconv.Itoa(y2),
		strconv.Itoa(int(duration.Milliseconds())))
	if err != nil {
		return fmt.Errorf("failed to swipe: %v\nOutput: %s", err, string(output))
	}

	return nil
}

// Tap simulates a tap at (x, y) on the Android device.
func (d AndroidDevice) Tap(x, y int) error {
	_, err := d.runAdbCommand("shell", "input", "tap", fmt.Sprintf("%d", x), fmt.Sprintf("%d", y))
	if err != nil {
		return err
	}

	return nil
}

func parseAdbDevicesOutput(output string) []AndroidDevice {
	var devices []AndroidDevice

	lines := strings.Split(output, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		parts := strings.Fields(line)
		if len(parts) == 2 {
			deviceID := parts[0]
			status := parts[1]
			if status == "device" {
				devices = append(devices, AndroidDevice{id: deviceID})
			}
		}
	}

	return devices
}

func getAndroidDeviceName(deviceID string) string {
	if strings.HasPrefix(deviceID, "emulator-") {
		if name := getEmulatorDisplayName(deviceID); name != "" {
			return name
		}
	}

	modelCmd := exec.Command("adb", "-s", deviceID, "shell", "getprop", "ro.product.model")
	modelOutput, err := modelCmd.CombinedOutput()
	if err == nil && len(modelOutput) > 0 {
		return strings.TrimSpace(string(modelOutput))
	}

	return deviceID
}

// GetAndroidDevices retrieves a list of connected Android devices
func GetAndroidDevices() ([]ControllableDevice, error) {
	command := exec.Command("adb", "devices")
	output, err := command.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to run 'adb devices': %v", err)
	}

	parsed := parseAdbDevicesOutput(string(output))
	androidDevices := make([]ControllableDevice, 0, len(parsed))
	for _, d := range parsed {
		d.name = getAndroidDeviceName(d.id)
		androidDevices = append(androidDevices, d)
	}

	return androidDevices, nil
}
