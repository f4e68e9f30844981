// Package config provides configuration types, loading, and merge
// precedence for mpsync. The per-workspace config is JSON (mpsync.json);
// defaults shared across workspaces live in a global YAML file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/selim/mpsync/internal/log"
	"github.com/selim/mpsync/internal/mapping"
	"gopkg.in/yaml.v3"
)

// Workspace config file candidates, in order of precedence.
var projectConfigFiles = []string{"mpsync.json", ".mpsync.json"}

const (
	// DefaultRootPath places files directly at the device filesystem root.
	DefaultRootPath = "/"
	// DefaultConfigFile is the name used when writing a new workspace config.
	DefaultConfigFile = "mpsync.json"
)

// DefaultIgnore lists workspace entries that never belong on a device.
var DefaultIgnore = []string{
	".git",
	".vscode",
	".idea",
	"__pycache__",
	".DS_Store",
	"mpsync.json",
	".mpsync.json",
	"*.pyc",
}

// ProjectConfig is the per-workspace configuration model (mpsync.json).
// Unknown keys are preserved verbatim so other tools speaking the same
// file are not clobbered by a read-modify-write cycle.
type ProjectConfig struct {
	// Name is a display name for the target device.
	Name string `json:"name,omitempty"`
	// RootPath is the device location all mapped files are placed under.
	RootPath string `json:"rootPath,omitempty"`
	// PathMappings are ordered prefix-rewrite rules; first match wins.
	PathMappings []mapping.Rule `json:"pathMappings,omitempty"`
	// Ignore lists workspace patterns excluded from deployment.
	Ignore []string `json:"ignore,omitempty"`
	// DeviceVolume is the mount point of the device filesystem.
	DeviceVolume string `json:"deviceVolume,omitempty"`

	// extra holds keys this version of mpsync does not understand.
	extra map[string]json.RawMessage
}

// knownKeys are the JSON keys owned by ProjectConfig proper.
var knownKeys = map[string]bool{
	"name":         true,
	"rootPath":     true,
	"pathMappings": true,
	"ignore":       true,
	"deviceVolume": true,
}

// projectConfigAlias avoids recursing into the custom JSON methods.
type projectConfigAlias struct {
	Name         string         `json:"name,omitempty"`
	RootPath     string         `json:"rootPath,omitempty"`
	PathMappings []mapping.Rule `json:"pathMappings,omitempty"`
	Ignore       []string       `json:"ignore,omitempty"`
	DeviceVolume string         `json:"deviceVolume,omitempty"`
}

// UnmarshalJSON decodes the known fields and stashes everything else.
func (c *ProjectConfig) UnmarshalJSON(data []byte) error {
	var alias projectConfigAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Name = alias.Name
	c.RootPath = alias.RootPath
	c.PathMappings = alias.PathMappings
	c.Ignore = alias.Ignore
	c.DeviceVolume = alias.DeviceVolume

	c.extra = nil
	for key, value := range raw {
		if knownKeys[key] {
			continue
		}
		if c.extra == nil {
			c.extra = make(map[string]json.RawMessage)
		}
		c.extra[key] = value
	}
	return nil
}

// MarshalJSON re-emits the known fields alongside any preserved keys.
func (c ProjectConfig) MarshalJSON() ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(c.extra)+len(knownKeys))
	for key, value := range c.extra {
		merged[key] = value
	}

	known, err := json.Marshal(projectConfigAlias{
		Name:         c.Name,
		RootPath:     c.RootPath,
		PathMappings: c.PathMappings,
		Ignore:       c.Ignore,
		DeviceVolume: c.DeviceVolume,
	})
	if err != nil {
		return nil, err
	}
	var knownRaw map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownRaw); err != nil {
		return nil, err
	}
	for key, value := range knownRaw {
		merged[key] = value
	}

	return json.Marshal(merged)
}

// GlobalConfig carries cross-workspace defaults (~/.mpsync/config.yaml).
type GlobalConfig struct {
	RootPath     string   `yaml:"rootPath,omitempty"`
	Ignore       []string `yaml:"ignore,omitempty"`
	DeviceVolume string   `yaml:"deviceVolume,omitempty"`
	Debug        int      `yaml:"debug,omitempty"`
}

// globalConfigPath returns the global config file path (~/.mpsync/config.yaml).
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mpsync", "config.yaml")
}

// LoadGlobal loads the global config file. Absence or a parse failure
// yields the zero config; the caller cannot tell the difference.
func LoadGlobal() GlobalConfig {
	path := globalConfigPath()
	if path == "" {
		return GlobalConfig{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}
	}

	var global GlobalConfig
	if err := yaml.Unmarshal(data, &global); err != nil {
		log.Debugf("Failed to parse global config %s: %v", path, err)
		return GlobalConfig{}
	}
	log.Debugf("Loaded global config: %s", path)
	return global
}

// Settings is the effective configuration after merging global defaults
// with the workspace config. CLI flags are applied on top by the caller.
type Settings struct {
	Name         string
	RootPath     string
	PathMappings []mapping.Rule
	Ignore       []string
	DeviceVolume string
}

// Resolve merges global and project configuration with the project
// taking precedence, and fills in hard defaults.
func Resolve(global GlobalConfig, project ProjectConfig) Settings {
	settings := Settings{
		Name:         project.Name,
		RootPath:     DefaultRootPath,
		Ignore:       DefaultIgnore,
		PathMappings: project.PathMappings,
	}

	if global.RootPath != "" {
		settings.RootPath = global.RootPath
	}
	if project.RootPath != "" {
		settings.RootPath = project.RootPath
	}

	if global.Ignore != nil {
		settings.Ignore = global.Ignore
	}
	if project.Ignore != nil {
		settings.Ignore = project.Ignore
	}

	if global.DeviceVolume != "" {
		settings.DeviceVolume = global.DeviceVolume
	}
	if project.DeviceVolume != "" {
		settings.DeviceVolume = project.DeviceVolume
	}

	return settings
}
