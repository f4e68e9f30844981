// Package mapping translates workspace-relative file paths into device
// filesystem paths and back, following an ordered list of prefix-rewrite
// rules. All functions are pure: they take the rules and root path as
// arguments, never retain them, and never return errors -- unmatched or
// empty inputs fall back to plain concatenation under the root.
package mapping

import (
	"strings"
)

// Rule rewrites one local path prefix to a device path prefix.
// Rules live in ordered slices; the first matching rule wins, so
// overlapping prefixes are legal and resolved purely by position.
type Rule struct {
	Local  string `json:"local" yaml:"local"`
	Device string `json:"device" yaml:"device"`
}

// Normalize converts a path to the canonical form the mapper operates on:
// backslashes become forward slashes, runs of slashes collapse to one,
// and a trailing slash is removed (root "/" is kept). Idempotent.
func Normalize(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for strings.Contains(normalized, "//") {
		normalized = strings.ReplaceAll(normalized, "//", "/")
	}
	if len(normalized) > 1 {
		normalized = strings.TrimRight(normalized, "/")
	}
	return normalized
}

// join concatenates path pieces with single slashes, skipping empties.
func join(parts ...string) string {
	joined := strings.Join(parts, "/")
	return Normalize(joined)
}

// effectiveRoot reduces a root path to its effective prefix:
// "/" means "no additional root" and becomes empty.
func effectiveRoot(rootPath string) string {
	root := Normalize(rootPath)
	if root == "/" {
		return ""
	}
	return root
}

// ensureAbsolute guarantees a leading slash on a device path.
func ensureAbsolute(path string) string {
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		return "/" + path
	}
	return path
}

// Apply maps a workspace-relative path to an absolute device path.
//
// Rules are scanned in declared order and the first match wins. A rule
// matches when the path equals its local prefix exactly or starts with
// it segment-wise. The rule's device prefix is taken root-relative
// unless it already begins with rootPath, which lets a rule pin an
// absolute device location. Without rules, or when nothing matches,
// the path is placed directly under the root.
func Apply(localRel, rootPath string, rules []Rule) string {
	local := Normalize(localRel)
	root := effectiveRoot(rootPath)

	for _, rule := range rules {
		ruleLocal := Normalize(rule.Local)

		var relative string
		switch {
		case local == ruleLocal:
			relative = ""
		case strings.HasPrefix(local, ruleLocal+"/"):
			relative = local[len(ruleLocal)+1:]
		default:
			continue
		}

		device := Normalize(rule.Device)
		if device == "/" {
			device = ""
		}

		mapped := join(device, relative)
		if root != "" && !strings.HasPrefix(device, root) {
			mapped = join(root, mapped)
		}
		return ensureAbsolute(mapped)
	}

	return ensureAbsolute(join(root, local))
}

// Reverse maps an absolute device path back to a workspace-relative
// path. It is the approximate inverse of Apply for the same rule set:
// a rule whose device prefix is empty or "/" is treated as
// unconditionally applicable, so with multiple rules present the result
// can differ from the path that originally produced the input. Call
// sites depend on this order-sensitive behavior; keep it.
func Reverse(devicePath, rootPath string, rules []Rule) string {
	device := Normalize(devicePath)
	root := effectiveRoot(rootPath)

	var relative string
	switch {
	case root != "" && strings.HasPrefix(device, root+"/"):
		relative = device[len(root)+1:]
	default:
		relative = strings.TrimPrefix(device, "/")
	}

	for _, rule := range rules {
		ruleLocal := Normalize(rule.Local)
		rulePrefix := strings.TrimPrefix(Normalize(rule.Device), "/")

		switch {
		case rulePrefix == "":
			return join(ruleLocal, relative)
		case relative == rulePrefix:
			return ruleLocal
		case strings.HasPrefix(relative, rulePrefix+"/"):
			return join(ruleLocal, relative[len(rulePrefix)+1:])
		}
	}

	return relative
}
