// Package config holds the settings of the dpll command line tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config groups the options of one solver run.
type Config struct {
	Verbose bool   `mapstructure:"verbose"` // Log details about the solving process
	Stats   bool   `mapstructure:"stats"`   // Log statistics once solving is done
	Output  string `mapstructure:"output"`  // Where to write the result; empty means stdout
}

// New returns a Config with default values.
func New() *Config {
	return &Config{}
}

// FromFile reads a JSON settings file and decodes it into a Config.
// Unknown keys are ignored.
func FromFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %v", path, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %v", path, err)
	}
	conf := New()
	if err := mapstructure.Decode(fields, conf); err != nil {
		return nil, fmt.Errorf("could not decode config %q: %v", path, err)
	}
	return conf, nil
}
