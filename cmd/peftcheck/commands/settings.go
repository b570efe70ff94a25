package commands

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings are the optional tool settings loaded from a YAML file.
type Settings struct {
	Log struct {
		// Level is the log level (trace, debug, info, warn, error).
		Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	} `yaml:"log"`

	// Output selects the default rendering (text or json). The --json
	// flag overrides it.
	Output string `yaml:"output" validate:"omitempty,oneof=text json"`

	History struct {
		// Path is the default history database; the --history-db flag
		// overrides it.
		Path string `yaml:"path"`
	} `yaml:"history"`
}

func defaultSettings() *Settings {
	return &Settings{}
}

// loadSettings reads and validates a settings file.
func loadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := defaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return s, nil
}
