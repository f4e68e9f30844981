package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/selim/mpsync/internal/log"
)

// Store reads and writes the per-workspace configuration. Read never
// fails: a missing or corrupt file yields the zero config. Write
// reports its error and the caller decides whether that is fatal.
type Store interface {
	Read() ProjectConfig
	Write(ProjectConfig) error
}

// fileStore persists mpsync.json at the workspace root.
type fileStore struct {
	workspace string
}

// NewFileStore returns a Store backed by the workspace's mpsync.json.
func NewFileStore(workspace string) Store {
	return &fileStore{workspace: workspace}
}

func (s *fileStore) Read() ProjectConfig {
	for _, filename := range projectConfigFiles {
		path := filepath.Join(s.workspace, filename)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var cfg ProjectConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			log.Debugf("Failed to parse config %s: %v", path, err)
			continue
		}
		log.Debugf("Loaded workspace config: %s", path)
		return cfg
	}
	return ProjectConfig{}
}

func (s *fileStore) Write(cfg ProjectConfig) error {
	// Rewrite whichever candidate already exists; fall back to the default name.
	path := filepath.Join(s.workspace, DefaultConfigFile)
	for _, filename := range projectConfigFiles {
		candidate := filepath.Join(s.workspace, filename)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
