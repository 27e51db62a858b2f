package models

// WorkflowDocument is a runtime-shaped workflow definition: named nodes plus
// a connection map keyed by source node name.
type WorkflowDocument struct {
	Name        string                    `json:"name"`
	Nodes       []*Node                   `json:"nodes"`
	Connections map[string]ConnectionSpec `json:"connections"`
	Active      bool                      `json:"active"`
	Settings    map[string]any            `json:"settings,omitempty"`
	StaticData  map[string]any            `json:"staticData,omitempty"`
}

// Node is a single step in a workflow document. Type is a catalog key.
type Node struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Position   []int          `json:"position,omitempty"`
}

// ConnectionSpec maps an output port name (usually "main") to its target
// groups. Each inner slice is one ordered fan-out group.
type ConnectionSpec map[string][][]ConnectionTarget

// ConnectionTarget references a downstream node by name.
type ConnectionTarget struct {
	Node  string `json:"node"`
	Type  string `json:"type,omitempty"`
	Index int    `json:"index"`
}

// NodeNames returns the set of node names present in the document.
func (d *WorkflowDocument) NodeNames() map[string]bool {
	names := make(map[string]bool, len(d.Nodes))

	for _, n := range d.Nodes {
		if n != nil && n.Name != "" {
			names[n.Name] = true
		}
	}

	return names
}

// ValidationReport is the accumulated outcome of structural validation.
// It is a pure function of a document and a catalog; producing one has no
// side effects.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// GenerationResult is the outcome of one generation attempt, degraded or not.
type GenerationResult struct {
	Workflow          *WorkflowDocument `json:"workflow"`
	SetupInstructions []string          `json:"setup_instructions"`
	Explanation       string            `json:"explanation"`
	Errors            []string          `json:"errors"`
	FallbackUsed      bool              `json:"fallback_used"`
}
