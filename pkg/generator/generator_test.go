package generator

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/llm"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/workflow"
)

type scriptedLLM struct {
	response string
	err      error
}

func (s *scriptedLLM) Complete(context.Context, llm.CompletionRequest) (string, error) {
	return s.response, s.err
}

func (s *scriptedLLM) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("not used")
}

func newGenerator(client llm.Client) *Generator {
	logger := slog.New(slog.DiscardHandler)
	return New(client, workflow.NewValidator(catalog.NewSeededCatalog(), logger), logger)
}

const validResponse = "```json\n" + `{
	"workflow": {
		"name": "Webhook API",
		"nodes": [
			{"name": "Webhook", "type": "n8n-nodes-base.webhook",
			 "parameters": {"httpMethod": "POST", "path": "/api"}},
			{"name": "Respond", "type": "n8n-nodes-base.function",
			 "parameters": {"functionCode": "return items;"}}
		],
		"connections": {
			"Webhook": {"main": [[{"node": "Respond", "type": "main", "index": 0}]]}
		}
	},
	"setup_instructions": ["Activate the workflow"],
	"explanation": "Receives requests and processes them."
}` + "\n```"

func TestGenerateValidResponse(t *testing.T) {
	g := newGenerator(&scriptedLLM{response: validResponse})

	result := g.Generate(t.Context(), models.GenerationContext{
		UserQuery: "Create webhook for API",
		Query:     models.SearchQuery{Intent: models.IntentCreateNew},
		Language:  models.LanguageEnglish,
	})
	require.NotNil(t, result.Workflow)
	assert.False(t, result.FallbackUsed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Webhook API", result.Workflow.Name)
	require.Len(t, result.Workflow.Nodes, 2)
	assert.Equal(t, []string{"Activate the workflow"}, result.SetupInstructions)
}

func TestGenerateFallsBackOnModelError(t *testing.T) {
	g := newGenerator(&scriptedLLM{err: errors.New("rate limited")})

	result := g.Generate(t.Context(), models.GenerationContext{Language: models.LanguageEnglish})
	assert.True(t, result.FallbackUsed)
	require.NotNil(t, result.Workflow)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "rate limited")
}

func TestGenerateFallsBackOnGarbage(t *testing.T) {
	for _, response := range []string{
		"I cannot help with that.",
		"```json\n{\"workflow\": \n```",
	} {
		g := newGenerator(&scriptedLLM{response: response})
		result := g.Generate(t.Context(), models.GenerationContext{Language: models.LanguageEnglish})
		assert.True(t, result.FallbackUsed, "response %q", response)
		require.NotNil(t, result.Workflow)
	}
}

func TestGenerateRepairsMissingConnections(t *testing.T) {
	response := `{
		"workflow": {
			"name": "No connections",
			"nodes": [
				{"name": "Only", "type": "n8n-nodes-base.set"},
				{"type": "n8n-nodes-base.set"}
			]
		},
		"setup_instructions": [],
		"explanation": "x"
	}`
	g := newGenerator(&scriptedLLM{response: response})

	result := g.Generate(t.Context(), models.GenerationContext{Language: models.LanguageEnglish})
	assert.False(t, result.FallbackUsed)
	require.NotNil(t, result.Workflow)
	assert.NotNil(t, result.Workflow.Connections)
	// The nameless node is dropped during repair.
	require.Len(t, result.Workflow.Nodes, 1)
	assert.NotEmpty(t, result.Errors)
}

func TestGenerateReturnsRepairedWorkflowWithFindings(t *testing.T) {
	// A node type outside the catalog survives repair; the result keeps
	// the model's workflow and reports the finding instead of swapping in
	// the fallback.
	response := `{
		"workflow": {
			"name": "Slack Alert",
			"nodes": [{"name": "Notify", "type": "n8n-nodes-base.slack"}],
			"connections": {}
		}
	}`
	g := newGenerator(&scriptedLLM{response: response})

	result := g.Generate(t.Context(), models.GenerationContext{Language: models.LanguageRussian})
	assert.False(t, result.FallbackUsed)
	require.NotNil(t, result.Workflow)
	assert.Equal(t, "Slack Alert", result.Workflow.Name)
	require.Len(t, result.Workflow.Nodes, 1)
	assert.Equal(t, "n8n-nodes-base.slack", result.Workflow.Nodes[0].Type)
	assert.Contains(t, result.Errors, `node "Notify" has unknown type "n8n-nodes-base.slack"`)
}

func TestFallbackWorkflowAlwaysValidates(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	v := workflow.NewValidator(catalog.NewSeededCatalog(), logger)

	report := v.Validate(t.Context(), FallbackWorkflow())
	assert.True(t, report.Valid, "errors: %v", report.Errors)

	doc := FallbackWorkflow()
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "Webhook", doc.Nodes[0].Name)
	assert.Equal(t, "Process Data", doc.Nodes[1].Name)
	targets := doc.Connections["Webhook"]["main"]
	require.Len(t, targets, 1)
	assert.Equal(t, "Process Data", targets[0][0].Node)
}
