// Package paths provides workspace and device-volume path validation,
// plus file name normalization for device filesystems. Most device
// firmwares (FAT-backed) expect NFC names, while macOS hands out NFD.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PathError represents a path validation or access error.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// ValidateWorkspacePath validates and resolves a workspace directory path.
// Returns the resolved absolute path or an error if the path is invalid.
func ValidateWorkspacePath(path string) (string, error) {
	workspace, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve path: %s", path)}
	}

	info, err := os.Lstat(workspace)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &PathError{Message: fmt.Sprintf("Workspace path does not exist: %s", workspace)}
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access path: %s: %v", workspace, err)}
	}

	// Reject symlinks to prevent symlink-based path traversal
	if info.Mode()&os.ModeSymlink != 0 {
		return "", &PathError{Message: fmt.Sprintf("Workspace path cannot be a symlink: %s", workspace)}
	}

	if !info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Workspace path must be a directory: %s", workspace)}
	}

	return workspace, nil
}

// ValidateDeviceVolume validates a mounted device volume path.
// The volume must exist and be a writable directory.
func ValidateDeviceVolume(path string) (string, error) {
	if path == "" {
		return "", &PathError{Message: "No device volume configured (set deviceVolume or pass --device-volume)"}
	}

	volume, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Message: fmt.Sprintf("Cannot resolve device volume: %s", path)}
	}

	info, err := os.Stat(volume)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &PathError{Message: fmt.Sprintf("Device volume is not mounted: %s", volume)}
		}
		return "", &PathError{Message: fmt.Sprintf("Cannot access device volume: %s: %v", volume, err)}
	}

	if !info.IsDir() {
		return "", &PathError{Message: fmt.Sprintf("Device volume must be a directory: %s", volume)}
	}

	return volume, nil
}

const maxRemoteNameBytes = 255

// NormalizeRemoteName normalizes a single file or directory name for a
// device filesystem.
//
// Transformations applied:
//  1. Unicode NFC normalization
//  2. Remove null bytes and control characters
//  3. Trim whitespace and trailing dots (FAT compatibility)
//  4. Truncate to the filesystem byte limit (255 bytes)
func NormalizeRemoteName(name string) string {
	normalized := norm.NFC.String(name)

	normalized = strings.Map(func(r rune) rune {
		if r == 0 || r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, normalized)

	normalized = strings.TrimSpace(normalized)
	normalized = strings.TrimRight(normalized, ". ")

	if len(normalized) > maxRemoteNameBytes {
		for len(normalized) > maxRemoteNameBytes && len(normalized) > 0 {
			_, size := utf8.DecodeLastRuneInString(normalized)
			normalized = normalized[:len(normalized)-size]
		}
		normalized = strings.TrimSpace(normalized)
	}

	return normalized
}

// NormalizeRemotePath applies NormalizeRemoteName to each segment of a
// slash-delimited device path. Leading and trailing slashes survive as
// they are; empty segments are dropped.
func NormalizeRemotePath(devicePath string) string {
	if devicePath == "/" {
		return "/"
	}
	segments := strings.Split(devicePath, "/")
	out := make([]string, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			// Keep a leading empty segment so absolute paths stay absolute.
			if i == 0 {
				out = append(out, "")
			}
			continue
		}
		out = append(out, NormalizeRemoteName(segment))
	}
	return strings.Join(out, "/")
}
