package pipeline

import (
	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
)

// QueryAnalysis echoes back how the request was interpreted.
type QueryAnalysis struct {
	OriginalQuery        string              `json:"original_query"`
	DetectedLanguage     models.Language     `json:"detected_language"`
	Intent               models.Intent       `json:"intent"`
	Keywords             []string            `json:"keywords"`
	Entities             map[string][]string `json:"entities"`
	ComplexityPreference models.Complexity   `json:"complexity_preference"`
}

// GenerateResponse is the outbound generation payload.
type GenerateResponse struct {
	Success               bool                     `json:"success"`
	Message               string                   `json:"message"`
	QueryAnalysis         QueryAnalysis            `json:"query_analysis"`
	SimilarWorkflowsFound int                      `json:"similar_workflows_found"`
	GeneratedWorkflow     *models.WorkflowDocument `json:"generated_workflow"`
	SetupInstructions     []string                 `json:"setup_instructions"`
	Explanation           string                   `json:"explanation"`
	Errors                []string                 `json:"errors"`
	FallbackUsed          bool                     `json:"fallback_used"`
	Labels                language.Labels          `json:"labels"`
}

// assemble folds the stage outputs into the response. A fallback workflow
// still ships, but as success=false so callers can tell generation actually
// failed; validation findings on a generated workflow keep success=true.
func assemble(parsed models.SearchQuery, similarCount int, result *models.GenerationResult) *GenerateResponse {
	statusKey := "workflow_generated"
	if result.FallbackUsed {
		statusKey = "generation_failed"
	}

	return &GenerateResponse{
		Success:               !result.FallbackUsed,
		Message:               language.StatusMessage(parsed.Language, statusKey),
		QueryAnalysis:         Analysis(parsed),
		SimilarWorkflowsFound: similarCount,
		GeneratedWorkflow:     result.Workflow,
		SetupInstructions:     result.SetupInstructions,
		Explanation:           result.Explanation,
		Errors:                result.Errors,
		FallbackUsed:          result.FallbackUsed,
		Labels:                language.GenerationLabels(parsed.Language),
	}
}

// Analysis echoes the parsed query back in the outbound shape.
func Analysis(parsed models.SearchQuery) QueryAnalysis {
	keywords := parsed.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	entities := parsed.Entities
	if entities == nil {
		entities = map[string][]string{}
	}
	return QueryAnalysis{
		OriginalQuery:        parsed.OriginalText,
		DetectedLanguage:     parsed.Language,
		Intent:               parsed.Intent,
		Keywords:             keywords,
		Entities:             entities,
		ComplexityPreference: parsed.ComplexityPreference,
	}
}
