package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the config file looked up in the working directory.
const FileName = "wklprep.yaml"

// File is the content of wklprep.yaml.
//
//	params:
//	  USER: bob
//	  DURTIME: 2h
//	  STAXThreadID: 3
//	output: json
type File struct {
	// Params holds host bindings by name; scalars of any YAML type are read as text.
	Params map[string]string `yaml:"params"`

	// Output is the default output format of `wklprep prepare`.
	Output string `yaml:"output,omitempty"`
}

// Load reads the config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
