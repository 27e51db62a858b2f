// Package workflow validates generated workflow documents structurally and
// against the node catalog.
package workflow

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ugnislab/flowgen/pkg/models"
)

// parameterSchema compiles a node definition's parameter specs into a JSON
// schema. Unknown parameters are allowed; n8n nodes carry many optional
// fields the catalog does not track.
func parameterSchema(def *models.NodeDefinition) (*gojsonschema.Schema, error) {
	properties := make(map[string]any, len(def.Parameters))
	var required []string

	for _, spec := range def.Parameters {
		prop := map[string]any{}
		if jsonType := schemaType(spec.Type); jsonType != "" {
			prop["type"] = jsonType
		}
		if len(spec.Options) > 0 {
			prop["enum"] = spec.Options
		}
		for rule, value := range spec.ValidationRules {
			prop[rule] = value
		}
		properties[spec.Name] = prop
		if spec.Required {
			required = append(required, spec.Name)
		}
	}

	root := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		root["required"] = required
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(root))
	if err != nil {
		return nil, fmt.Errorf("compile schema for %s: %w", def.Type, err)
	}
	return schema, nil
}

func gojsonLoader(v any) gojsonschema.JSONLoader {
	return gojsonschema.NewGoLoader(v)
}

// schemaType maps catalog parameter types onto JSON schema types. Types
// without a clean mapping stay unconstrained.
func schemaType(paramType string) string {
	switch paramType {
	case "string", "options":
		return "string"
	case "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array", "collection":
		return "array"
	case "object", "json":
		return "object"
	default:
		return ""
	}
}
