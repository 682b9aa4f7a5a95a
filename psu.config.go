package psu

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfigName is the project config filename looked up beside the
// script.
const ProjectConfigName = "psu.yaml"

// WatchConfig holds the watch-mode settings of a project config.
type WatchConfig struct {
	// DebounceMs is the rebuild debounce window in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`
	// ClearScreen clears the terminal before each rebuild.
	ClearScreen bool `yaml:"clear_screen"`
}

// ProjectConfig is the optional per-project psu.yaml file. Zero values
// mean "not set"; CLI flags override file values.
type ProjectConfig struct {
	OutDir   string      `yaml:"out_dir"`
	Strict   bool        `yaml:"strict"`
	LogLevel string      `yaml:"log_level"`
	Watch    WatchConfig `yaml:"watch"`
}

// LoadProjectConfig reads and strictly decodes a project config file.
// Unknown fields are rejected.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(path, ErrMsgConfigRead, err)
	}

	config := &ProjectConfig{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigError(path, ErrMsgConfigDecode, err)
	}
	return config, nil
}

// FindProjectConfig loads the psu.yaml sitting beside the given script, if
// one exists. A missing file is not an error; the zero config is returned.
func FindProjectConfig(scriptPath string) (*ProjectConfig, error) {
	path := filepath.Join(filepath.Dir(scriptPath), ProjectConfigName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, nil
		}
		return nil, NewConfigError(path, ErrMsgConfigRead, err)
	}
	return LoadProjectConfig(path)
}
