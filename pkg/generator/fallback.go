package generator

import (
	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
)

// FallbackWorkflow returns the deterministic two-node workflow used when
// generation cannot produce a valid document. It always validates.
func FallbackWorkflow() *models.WorkflowDocument {
	return &models.WorkflowDocument{
		Name: "Basic Webhook Workflow",
		Nodes: []*models.Node{
			{
				Name: "Webhook",
				Type: "n8n-nodes-base.webhook",
				Parameters: map[string]any{
					"httpMethod": "POST",
					"path":       "/webhook",
				},
			},
			{
				Name: "Process Data",
				Type: "n8n-nodes-base.function",
				Parameters: map[string]any{
					"functionCode": "return items;",
				},
			},
		},
		Connections: map[string]models.ConnectionSpec{
			"Webhook": {
				"main": [][]models.ConnectionTarget{
					{{Node: "Process Data", Type: "main", Index: 0}},
				},
			},
		},
	}
}

// fallbackResult wraps the fallback workflow with localized messaging and
// the reasons generation degraded.
func fallbackResult(lang models.Language, reasons []string) *models.GenerationResult {
	return &models.GenerationResult{
		Workflow: FallbackWorkflow(),
		SetupInstructions: []string{
			"Point your service at the webhook URL once the workflow is activated.",
			"Replace the function node body with your own processing logic.",
		},
		Explanation:  language.StatusMessage(lang, "generation_failed"),
		Errors:       reasons,
		FallbackUsed: true,
	}
}
