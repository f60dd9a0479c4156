package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/secforge/secforge/pkg/models"
)

// LoadFile reads a configuration file and normalizes it. Files ending in
// .json use the camelCase keys of the web payload; anything else is YAML
// with snake_case keys. Unknown keys are rejected in both formats.
func LoadFile(path string) (*models.Configuration, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration document and normalizes it.
func Parse(data []byte) (*models.Configuration, error) {
	cfg := &models.Configuration{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	Normalize(cfg)
	return cfg, nil
}

// ParseJSON decodes a JSON configuration document and normalizes it.
func ParseJSON(data []byte) (*models.Configuration, error) {
	cfg := &models.Configuration{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	Normalize(cfg)
	return cfg, nil
}
