package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

func verify(cfg *Config, schemaData []byte) error {
	// parse schema
	var schema map[string]any
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkNode(schema, schema, configMap, "config"); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkNode validates value against schema node, supports the subset of keywords
// produced by jsonschema.Reflect: $ref, type, properties, required, items, enum, minItems, minimum
func checkNode(doc, node map[string]any, val any, path string) error {
	node, err := resolveRef(doc, node)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if enum, ok := node["enum"].([]any); ok {
		found := false
		for _, e := range enum {
			if e == val {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: value %v is not one of %v", path, val, enum)
		}
	}

	switch node["type"] {
	case "object":
		obj, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		if req, ok := node["required"].([]any); ok {
			for _, r := range req {
				name, _ := r.(string)
				if _, exists := obj[name]; !exists {
					return fmt.Errorf("%s.%s is required", path, name)
				}
			}
		}
		props, _ := node["properties"].(map[string]any)
		for name, v := range obj {
			propNode, ok := props[name].(map[string]any)
			if !ok {
				continue
			}
			if err := checkNode(doc, propNode, v, path+"."+name); err != nil {
				return err
			}
		}
	case "array":
		arr, ok := val.([]any)
		if !ok {
			if val == nil {
				arr = []any{}
			} else {
				return fmt.Errorf("%s: expected array", path)
			}
		}
		if minItems, ok := node["minItems"].(float64); ok && float64(len(arr)) < minItems {
			return fmt.Errorf("%s: expected at least %v items, got %d", path, minItems, len(arr))
		}
		if items, ok := node["items"].(map[string]any); ok {
			for i, v := range arr {
				if err := checkNode(doc, items, v, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
	case "integer", "number":
		num, ok := val.(float64)
		if !ok {
			return fmt.Errorf("%s: expected number", path)
		}
		if minimum, ok := node["minimum"].(float64); ok && num < minimum {
			return fmt.Errorf("%s: %v is less than minimum %v", path, num, minimum)
		}
	case "string":
		if _, ok := val.(string); !ok {
			return fmt.Errorf("%s: expected string", path)
		}
	case "boolean":
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", path)
		}
	}
	return nil
}

// resolveRef follows local "#/$defs/Name" references
func resolveRef(doc, node map[string]any) (map[string]any, error) {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node, nil
	}
	name, found := strings.CutPrefix(ref, "#/$defs/")
	if !found {
		return nil, fmt.Errorf("unsupported ref %q", ref)
	}
	defs, _ := doc["$defs"].(map[string]any)
	def, ok := defs[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("ref %q not found", ref)
	}
	return def, nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if len(cfg.Boards) == 0 {
		return errors.New("boards are required")
	}
	for i, b := range cfg.Boards {
		if b.ID == "" || b.URL == "" {
			return fmt.Errorf("boards[%d] requires id and url", i)
		}
	}

	// check server config
	if cfg.Server.Timeout == 0 {
		return errors.New("server.timeout is required")
	}

	// check extraction config if enabled
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout == 0 {
			return errors.New("extraction.timeout is required when extraction is enabled")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return errors.New("extraction.min_text_length must be non-negative")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
