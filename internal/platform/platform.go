// Package platform provides host platform detection and discovery of
// mounted device volumes (MicroPython/CircuitPython boards exposed as
// USB mass storage).
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// HostPlatform represents the detected host operating system environment.
type HostPlatform string

const (
	// WindowsWSL is Windows Subsystem for Linux.
	WindowsWSL HostPlatform = "windows-wsl"
	// WindowsNative is native Windows.
	WindowsNative HostPlatform = "windows-native"
	// MacOS is macOS.
	MacOS HostPlatform = "macos"
	// Linux is native Linux.
	Linux HostPlatform = "linux"
)

var (
	detectedPlatform HostPlatform
	detectOnce       sync.Once
)

// DetectHost returns the current host platform, caching the result.
//
// Detection logic:
//   - runtime.GOOS == "windows" -> WindowsNative
//   - runtime.GOOS == "darwin"  -> MacOS
//   - runtime.GOOS == "linux" + /proc/version contains "microsoft" -> WindowsWSL
//   - runtime.GOOS == "linux" (fallback) -> Linux
func DetectHost() HostPlatform {
	detectOnce.Do(func() {
		switch runtime.GOOS {
		case "windows":
			detectedPlatform = WindowsNative
		case "darwin":
			detectedPlatform = MacOS
		case "linux":
			if isWSL() {
				detectedPlatform = WindowsWSL
			} else {
				detectedPlatform = Linux
			}
		default:
			// Unknown OS, assume Linux-like behavior
			detectedPlatform = Linux
		}
	})
	return detectedPlatform
}

// isWSL checks if running inside WSL by reading /proc/version.
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err == nil && strings.Contains(strings.ToLower(string(data)), "microsoft") {
		return true
	}
	return os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSLENV") != ""
}

// HostOSName returns a human-readable OS name string.
func HostOSName() string {
	switch DetectHost() {
	case WindowsNative:
		return "Windows"
	case WindowsWSL:
		return "Windows (WSL)"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// deviceMarkers are files whose presence marks a mounted volume as a
// MicroPython/CircuitPython board filesystem. boot_out.txt is written
// by CircuitPython on every boot; boot.py/main.py are the MicroPython
// entrypoints.
var deviceMarkers = []string{"boot_out.txt", "boot.py", "main.py"}

// volumeRoots returns the directories candidate device mounts appear
// under on the current platform.
func volumeRoots() []string {
	switch DetectHost() {
	case MacOS:
		return []string{"/Volumes"}
	case WindowsNative:
		var roots []string
		for drive := 'D'; drive <= 'Z'; drive++ {
			roots = append(roots, string(drive)+":\\")
		}
		return roots
	case WindowsWSL:
		return []string{"/mnt"}
	default:
		user := os.Getenv("USER")
		roots := []string{"/media", "/run/media"}
		if user != "" {
			roots = append(roots, filepath.Join("/media", user), filepath.Join("/run/media", user))
		}
		return roots
	}
}

// LooksLikeDeviceVolume reports whether a directory plausibly is a
// mounted board filesystem.
func LooksLikeDeviceVolume(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, marker := range deviceMarkers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}

// DeviceVolumeCandidates scans the platform's mount locations and
// returns directories that look like board filesystems. Windows drives
// are probed directly; elsewhere each entry one level below the mount
// roots is checked.
func DeviceVolumeCandidates() []string {
	var candidates []string

	for _, root := range volumeRoots() {
		if DetectHost() == WindowsNative {
			if LooksLikeDeviceVolume(root) {
				candidates = append(candidates, root)
			}
			continue
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			mount := filepath.Join(root, entry.Name())
			if LooksLikeDeviceVolume(mount) {
				candidates = append(candidates, mount)
			}
		}
	}

	return candidates
}
