package mapping

import (
	"sort"
	"strings"
)

// parentDir returns the parent of a normalized absolute device path,
// or "/" when the path sits directly under the root.
func parentDir(devicePath string) string {
	idx := strings.LastIndex(devicePath, "/")
	if idx <= 0 {
		return "/"
	}
	return devicePath[:idx]
}

// depth counts the non-empty segments of a device path.
func depth(devicePath string) int {
	count := 0
	for _, segment := range strings.Split(devicePath, "/") {
		if segment != "" {
			count++
		}
	}
	return count
}

// DeviceDirectory returns the device directory a local file maps into:
// the parent of its mapped device path, "/" when the file lands at the
// device root.
func DeviceDirectory(localRel, rootPath string, rules []Rule) string {
	return parentDir(Apply(localRel, rootPath, rules))
}

// DeviceDirectories returns every directory that must exist on the
// device for the given local files, shallowest first. Creating them in
// the returned order never touches a child before its parent. The
// filesystem root is excluded. Order among directories of equal depth
// is unspecified (currently lexicographic).
func DeviceDirectories(localFiles []string, rootPath string, rules []Rule) []string {
	seen := make(map[string]struct{})

	for _, file := range localFiles {
		dir := parentDir(Apply(file, rootPath, rules))
		for dir != "" && dir != "/" {
			seen[dir] = struct{}{}
			dir = parentDir(dir)
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool {
		di, dj := depth(dirs[i]), depth(dirs[j])
		if di != dj {
			return di < dj
		}
		return dirs[i] < dirs[j]
	})
	return dirs
}
