package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/ugnislab/flowgen/pkg/cmd"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/retrieval"
)

func indexNodes(ctx context.Context, command *cli.Command, logger *slog.Logger) error {
	cmd.NewCatalog(ctx, command.String("database-url"), command.String("path"), logger)

	return nil
}

func indexWorkflows(ctx context.Context, command *cli.Command, logger *slog.Logger) error {
	client := cmd.NewLLMClient(cmd.LLMConfig{
		APIKey:     command.String("openai-api-key"),
		BaseURL:    command.String("openai-base-url"),
		EmbedModel: command.String("openai-embed-model"),
		RedisURL:   command.String("redis-url"),
	}, logger)
	store := cmd.NewVectorStore(command.String("qdrant-url"), logger)
	indexer := retrieval.NewIndexer(client, store, logger)

	dir := command.String("path")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read workflows directory %q: %w", dir, err)
	}

	indexed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		doc, description, err := readWorkflowFile(path)
		if err != nil {
			logger.Warn("Skipping workflow file", "path", path, "error", err)

			continue
		}

		id, err := indexer.IndexWorkflow(ctx, doc, retrieval.IndexOptions{
			Description: description,
			Language:    command.String("language"),
		})
		if err != nil {
			logger.Warn("Failed to index workflow", "path", path, "error", err)

			continue
		}

		logger.Info("Indexed workflow", "name", doc.Name, "id", id)
		indexed++
	}

	logger.Info("Indexing finished", "path", dir, "indexed", indexed)

	return nil
}

// workflowFile is the on-disk example format: a workflow document with an
// optional free-text description alongside it.
type workflowFile struct {
	models.WorkflowDocument

	Description string `json:"description,omitempty"`
}

func readWorkflowFile(path string) (*models.WorkflowDocument, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var file workflowFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parse %q: %w", filepath.Base(path), err)
	}

	if file.Name == "" {
		return nil, "", fmt.Errorf("workflow %q has no name", filepath.Base(path))
	}

	return &file.WorkflowDocument, file.Description, nil
}
