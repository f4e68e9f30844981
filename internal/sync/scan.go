// Package sync builds and executes deployment plans: which workspace
// files go where on the device, and in what order directories must be
// created. The device is a mounted volume; no wire protocol is involved.
package sync

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// File is a workspace file selected for deployment.
type File struct {
	// Rel is the slash-delimited path relative to the workspace root.
	Rel  string
	Size int64
}

// Scan walks the workspace and returns the deployable files, skipping
// anything matched by the ignore patterns. Patterns match a bare entry
// name ("__pycache__", "*.pyc") or a workspace-relative path ("docs/drafts").
// Matching a directory prunes everything beneath it.
func Scan(workspace string, ignore []string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(workspace, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(workspace, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		relSlash := filepath.ToSlash(rel)

		if ignored(relSlash, d.Name(), ignore) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("cannot stat %s: %w", path, err)
		}
		files = append(files, File{Rel: relSlash, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("workspace scan failed: %w", err)
	}

	return files, nil
}

// ignored reports whether a workspace entry matches any ignore pattern.
func ignored(rel, name string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, rel); matched {
			return true
		}
		if rel == pattern || strings.HasPrefix(rel, pattern+"/") {
			return true
		}
	}
	return false
}
