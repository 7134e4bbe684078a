package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sketchdroid/sketchcli/devices"
)

type DoctorInfo struct {
	SketchCLIVersion string `json:"sketchcli_version"`
	OS               string `json:"os"`
	AndroidHome      string `json:"android_home,omitempty"`
	ADBPath          string `json:"adb_path,omitempty"`
	ADBVersion       string `json:"adb_version,omitempty"`
	DevicesFound     int    `json:"devices_found"`
}

func getAndroidSdkPath() string {
	sdkPath := os.Getenv("ANDROID_HOME")
	if sdkPath != "" {
		if _, err := os.Stat(sdkPath); err == nil {
			return sdkPath
		}
	}

	// try default Android SDK location on macOS
	homeDir := os.Getenv("HOME")
	if homeDir != "" {
		defaultPath := filepath.Join(homeDir, "Library", "Android", "sdk")
		if _, err := os.Stat(defaultPath); err == nil {
			return defaultPath
		}
	}

	// try default Android SDK location on Windows
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			defaultPath := filepath.Join(localAppData, "Android", "Sdk")
			if _, err := os.Stat(defaultPath); err == nil {
				return defaultPath
			}
		}
	}

	return ""
}

func getAdbPath() string {
	if path, err := exec.LookPath("adb"); err == nil {
		return path
	}

	sdkPath := getAndroidSdkPath()
	if sdkPath != "" {
		adbPath := filepath.Join(sdkPath, "platform-tools", "adb")
		if runtime.GOOS == "windows" {
			adbPath += ".exe"
		}
		if _, err := os.Stat(adbPath); err == nil {
			return adbPath
		}
	}

	return ""
}

func getAdbVersion(adbPath string) string {
	output, err := exec.Command(adbPath, "version").CombinedOutput()
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(output), "\n") {
		if strings.Contains(line, "Android Debug Bridge version") {
			return strings.TrimSpace(line)
		}
	}

	return ""
}

// DoctorCommand reports whether the environment can drive a device at all:
// adb present, SDK found, devices attached.
func DoctorCommand(version string) *CommandResponse {
	info := DoctorInfo{
		SketchCLIVersion: version,
		OS:               runtime.GOOS,
		AndroidHome:      getAndroidSdkPath(),
	}

	info.ADBPath = getAdbPath()
	if info.ADBPath != "" {
		info.ADBVersion = getAdbVersion(info.ADBPath)

		if list, err := devices.GetDeviceInfoList(); err == nil {
			info.DevicesFound = len(list)
		}
	}

	return NewSuccessResponse(info)
}
