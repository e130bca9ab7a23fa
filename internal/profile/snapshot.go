package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadInput reads a saved input snapshot. Files ending in .yaml or .yml are
// decoded as YAML; everything else is decoded as JSON.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var in Input
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decoding yaml snapshot %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decoding json snapshot %s: %w", path, err)
		}
	}
	return &in, nil
}

// SaveInput writes an input snapshot, choosing the encoding from the file
// extension the same way LoadInput does.
func SaveInput(path string, in *Input) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(in)
	} else {
		data, err = json.MarshalIndent(in, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
