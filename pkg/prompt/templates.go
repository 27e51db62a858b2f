// Package prompt turns a generation context into the system and user
// prompts sent to the model.
package prompt

import "github.com/ugnislab/flowgen/pkg/models"

// SystemPrompt frames every request. The model must answer with a single
// JSON object so extraction stays mechanical.
const SystemPrompt = `You are an expert n8n workflow engineer. You design automation workflows as n8n JSON documents.

Rules:
- Respond with exactly one JSON object and nothing else.
- The object has the keys: "workflow", "setup_instructions", "explanation".
- "workflow" must contain "name", "nodes" and "connections".
- Every node needs "name", "type" and "parameters".
- Use only node types from the provided list.
- Connections reference nodes by their "name".`

// templates are keyed by intent. Placeholders are substituted literally by
// the composer.
var templates = map[models.Intent]string{
	models.IntentCreateNew: `Create an n8n workflow for this request:

{user_request}

Similar workflows for reference:
{similar_workflows}

Available node types:
{available_nodes}

Design the workflow from scratch. Reuse patterns from the references where they fit the request.`,

	models.IntentModifyExisting: `The user wants to adapt an existing workflow:

{user_request}

The closest existing workflows:
{similar_workflows}

Available node types:
{available_nodes}

Start from the closest workflow above and change it to satisfy the request. Keep nodes that still apply.`,

	models.IntentExplainWorkflow: `The user asks how a workflow like this works:

{user_request}

Matching workflows:
{similar_workflows}

Available node types:
{available_nodes}

Build the workflow that answers the request and use "explanation" to walk through it step by step.`,
}

// templateFor maps every intent onto a template. Searching for similar
// workflows still generates one, so find_similar shares the creation
// template.
func templateFor(intent models.Intent) string {
	if tpl, ok := templates[intent]; ok {
		return tpl
	}
	return templates[models.IntentCreateNew]
}

var complexityDirectives = map[models.Complexity]string{
	models.ComplexitySimple:  "Keep the workflow minimal: the fewest nodes that satisfy the request, no optional steps.",
	models.ComplexityMedium:  "Balance simplicity and robustness: include necessary processing steps but avoid speculative ones.",
	models.ComplexityComplex: "Build a thorough workflow: include error handling, branching and data validation steps.",
}

var languageDirectives = map[models.Language]string{
	models.LanguageLatvian: "Write \"setup_instructions\" and \"explanation\" in Latvian.",
	models.LanguageRussian: "Write \"setup_instructions\" and \"explanation\" in Russian.",
	models.LanguageEnglish: "Write \"setup_instructions\" and \"explanation\" in English.",
}
