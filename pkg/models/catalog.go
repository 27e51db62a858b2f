package models

// NodeDefinition is one entry of the node-type catalog, keyed by the
// fully-qualified node type string.
type NodeDefinition struct {
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Version     string      `json:"version,omitempty"`
	Parameters  []ParamSpec `json:"parameters,omitempty"`
}

// ParamSpec describes one configurable parameter of a node type.
type ParamSpec struct {
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Description     string         `json:"description,omitempty"`
	Required        bool           `json:"required"`
	Default         any            `json:"default_value,omitempty"`
	Options         []any          `json:"options,omitempty"`
	ValidationRules map[string]any `json:"validation_rules,omitempty"`
}

// NodeSummary is the compact catalog view shipped into prompts and listings.
type NodeSummary struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Summary projects the definition down to its prompt-facing fields.
func (d NodeDefinition) Summary() NodeSummary {
	return NodeSummary{
		Type:        d.Type,
		DisplayName: d.DisplayName,
		Description: d.Description,
		Category:    d.Category,
	}
}
