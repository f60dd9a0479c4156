package template

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lint checks that a rendered artifact parses according to its extension.
// YAML (.yml, .yaml) and JSON (.json) files are checked; anything else passes.
func Lint(filePath string, content []byte) error {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yml", ".yaml":
		var doc any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, filePath, err)
		}
	case ".json":
		if !json.Valid(content) {
			return fmt.Errorf("%w: %s: invalid JSON", ErrInvalidArtifact, filePath)
		}
	}
	return nil
}

// MarshalJSON serializes v with two-space indentation and without HTML
// escaping, so struct field order and characters such as < and & are kept
// as written. No trailing newline is emitted.
func MarshalJSON(v any) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
