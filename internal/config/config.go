// Package config loads conversion job specs from YAML files for the
// batch CLI.
package config

import (
	"fmt"
	"os"

	"go-record-pipeline/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadJobSpec reads and parses a YAML job spec file.
func LoadJobSpec(path string) (*model.ConversionJobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job spec %s: %w", path, err)
	}

	var spec model.ConversionJobSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse job spec %s: %w", path, err)
	}
	if spec.DataDir == "" || spec.OutDir == "" {
		return nil, fmt.Errorf("job spec %s must set data_dir and out_dir", path)
	}
	return &spec, nil
}
