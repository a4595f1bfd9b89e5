package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML board definition from the given path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file %s: %w", path, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, err
	}

	def.Source = path

	return def, nil
}

// Parse parses YAML data into a board Definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition

	err := yaml.Unmarshal(data, &def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board YAML: %w", err)
	}

	if err := def.validate(); err != nil {
		return nil, err
	}

	return &def, nil
}
