// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file on top of Default().
// Keys absent from the file keep their default; unknown keys are rejected.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Field: path, Reason: "cannot read file", Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigurationError{Field: path, Reason: "invalid yaml", Err: err}
	}

	return &cfg, nil
}

// Discover returns explicit when set, otherwise DefaultFile if it exists in
// dir, otherwise "".
func Discover(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	p := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
