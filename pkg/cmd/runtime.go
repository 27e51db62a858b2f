package cmd

import (
	"log/slog"

	"github.com/ugnislab/flowgen/pkg/n8n"
	"github.com/ugnislab/flowgen/pkg/vector"
)

// NewVectorStore builds the Qdrant-backed example store.
func NewVectorStore(baseURL string, logger *slog.Logger) *vector.Store {
	return vector.NewStore(baseURL, logger)
}

// NewRuntime builds the n8n client and the upload manager around it.
func NewRuntime(baseURL, apiKey string, logger *slog.Logger) (*n8n.Client, *n8n.Manager) {
	client := n8n.NewClient(baseURL, apiKey, logger)

	return client, n8n.NewManager(client, logger)
}
