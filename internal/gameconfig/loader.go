package gameconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// SchemaValidator checks raw JSON against a schema file
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML or JSON bundle, checks it against schemaPath when a
// SchemaValidator is given, decodes it and runs struct-level validation.
// Every failure wraps domain.ErrInvalidConfiguration.
func Load(path, schemaPath string, sv SchemaValidator) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadBundle, path, err)
	}
	return Parse(raw, filepath.Ext(path), schemaPath, sv)
}

// Parse decodes bundle bytes. ext selects the format (".yaml", ".yml" or ".json").
func Parse(raw []byte, ext, schemaPath string, sv SchemaValidator) (*Bundle, error) {
	data, err := toJSON(raw, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfiguration, ErrContextDecodeBundle, err)
	}

	if sv != nil && schemaPath != "" {
		if err := sv.ValidateBytes(data, schemaPath); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfiguration, ErrContextDecodeBundle, err)
	}

	if err := structValidator.Struct(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return &b, nil
}

// toJSON normalises YAML input into JSON so one schema covers both formats.
func toJSON(raw []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return raw, nil
	case ".yaml", ".yml", "":
		var doc interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported bundle format %q", ext)
	}
}
