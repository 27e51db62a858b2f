package catalog

import "github.com/ugnislab/flowgen/pkg/models"

// DefaultDefinitions is the built-in seed set so the service is usable
// before any definition files are loaded.
func DefaultDefinitions() []models.NodeDefinition {
	return []models.NodeDefinition{
		{
			Type:        "n8n-nodes-base.webhook",
			Name:        "webhook",
			DisplayName: "Webhook",
			Description: "Receives HTTP requests and starts the workflow",
			Category:    "api",
			Parameters: []models.ParamSpec{
				{
					Name: "httpMethod", Type: "string", Required: true,
					Default: "POST",
					Options: []any{"GET", "POST", "PUT", "DELETE"},
				},
				{Name: "path", Type: "string", Required: true},
			},
		},
		{
			Type:        "n8n-nodes-base.httpRequest",
			Name:        "httpRequest",
			DisplayName: "HTTP Request",
			Description: "Makes an HTTP request and returns the response",
			Category:    "api",
			Parameters: []models.ParamSpec{
				{Name: "url", Type: "string", Required: true},
				{
					Name: "method", Type: "string", Required: false,
					Default: "GET",
					Options: []any{"GET", "POST", "PUT", "PATCH", "DELETE"},
				},
			},
		},
		{
			Type:        "n8n-nodes-base.function",
			Name:        "function",
			DisplayName: "Function",
			Description: "Runs custom JavaScript code over incoming items",
			Category:    "core",
			Parameters: []models.ParamSpec{
				{Name: "functionCode", Type: "string", Required: true},
			},
		},
		{
			Type:        "n8n-nodes-base.set",
			Name:        "set",
			DisplayName: "Set",
			Description: "Sets or overwrites values on incoming items",
			Category:    "core",
		},
		{
			Type:        "n8n-nodes-base.if",
			Name:        "if",
			DisplayName: "IF",
			Description: "Routes items down true/false branches by condition",
			Category:    "core",
		},
		{
			Type:        "n8n-nodes-base.telegramTrigger",
			Name:        "telegramTrigger",
			DisplayName: "Telegram Trigger",
			Description: "Starts the workflow on Telegram updates",
			Category:    "messaging",
			Parameters: []models.ParamSpec{
				{Name: "updates", Type: "array", Required: true, Default: []any{"message"}},
			},
		},
		{
			Type:        "n8n-nodes-base.telegram",
			Name:        "telegram",
			DisplayName: "Telegram",
			Description: "Sends messages through a Telegram bot",
			Category:    "messaging",
			Parameters: []models.ParamSpec{
				{Name: "chatId", Type: "string", Required: true},
				{Name: "text", Type: "string", Required: false},
			},
		},
		{
			Type:        "n8n-nodes-base.emailSend",
			Name:        "emailSend",
			DisplayName: "Send Email",
			Description: "Sends an email over SMTP",
			Category:    "email",
			Parameters: []models.ParamSpec{
				{Name: "toEmail", Type: "string", Required: true},
				{Name: "subject", Type: "string", Required: false},
			},
		},
		{
			Type:        "n8n-nodes-base.postgres",
			Name:        "postgres",
			DisplayName: "Postgres",
			Description: "Reads and writes rows in a PostgreSQL database",
			Category:    "database",
			Parameters: []models.ParamSpec{
				{
					Name: "operation", Type: "string", Required: true,
					Default: "insert",
					Options: []any{"insert", "update", "select", "delete"},
				},
				{Name: "table", Type: "string", Required: true},
			},
		},
	}
}
