package timeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteTimeline writes a timeline to a YAML file, creating parent directories.
func WriteTimeline(t *Timeline, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTimeline reads a timeline from a YAML file
func ReadTimeline(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Timeline
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if t.Version != Version {
		return nil, fmt.Errorf("unsupported timeline version %q", t.Version)
	}

	return &t, nil
}
