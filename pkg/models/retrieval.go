package models

// RetrievedWorkflow is one ranked candidate returned by similarity retrieval.
// Instances are never mutated after ranking.
type RetrievedWorkflow struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	SemanticScore   float64           `json:"semantic_score"`
	AdjustedScore   float64           `json:"adjusted_score"`
	Tags            []string          `json:"tags,omitempty"`
	Category        string            `json:"category,omitempty"`
	NodesCount      int               `json:"nodes_count"`
	ComplexityScore int               `json:"complexity_score"`
	Document        *WorkflowDocument `json:"workflow_json,omitempty"`
	MatchReasons    []string          `json:"match_reasons,omitempty"`
	Suggestions     []string          `json:"suggested_modifications,omitempty"`
}

// GenerationContext is the immutable per-request bundle consumed by prompt
// composition and generation. It is created once and read-only thereafter.
type GenerationContext struct {
	UserQuery            string
	Query                SearchQuery
	SimilarWorkflows     []RetrievedWorkflow
	AvailableNodes       []NodeSummary
	Language             Language
	ComplexityPreference Complexity
}
