package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a MapProvider from YAML bytes. The document root must
// be a mapping.
func ParseYAML(data []byte) (*MapProvider, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("params: parse yaml: %w", err)
	}

	return NewMapProvider(values), nil
}

// LoadYAML builds a MapProvider from a YAML file.
func LoadYAML(path string) (*MapProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: read %s: %w", path, err)
	}

	return ParseYAML(data)
}
