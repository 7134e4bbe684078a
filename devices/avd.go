package devices

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sketchdroid/sketchcli/utils"
	"gopkg.in/ini.v1"
)

// getEmulatorDisplayName resolves an emulator's friendly name via its AVD
// configuration. Returns "" when the name cannot be determined.
func getEmulatorDisplayName(deviceID string) string {
	output, err := exec.Command("adb", "-s", deviceID, "emu", "avd", "name").CombinedOutput()
	if err != nil {
		return ""
	}

	// first line is the AVD name, second is "OK"
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 {
		return ""
	}
	avdName := strings.TrimSpace(lines[0])
	if avdName == "" || avdName == "OK" {
		return ""
	}

	return lookupAVDDisplayName(avdName)
}

// lookupAVDDisplayName reads the AVD's .ini files to find its display name,
// falling back to the AVD name itself.
func lookupAVDDisplayName(avdName string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return avdName
	}

	iniFile := filepath.Join(homeDir, ".android", "avd", avdName+".ini")
	iniConfig, err := ini.Load(iniFile)
	if err != nil {
		utils.Verbose("Failed to read %s: %v", iniFile, err)
		return avdName
	}

	avdPath := iniConfig.Section("").Key("path").String()
	if avdPath == "" {
		return avdName
	}

	configPath := filepath.Join(avdPath, "config.ini")
	configData, err := ini.Load(configPath)
	if err != nil {
		utils.Verbose("Failed to read %s: %v", configPath, err)
		return avdName
	}

	if displayName := configData.Section("").Key("avd.ini.displayname").String(); displayName != "" {
		return displayName
	}

	return avdName
}
