// Package main provides the Flowgen indexing CLI. It loads node definition
// files into the catalog and workflow examples into the vector store.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"

	"github.com/ugnislab/flowgen/pkg/log"
)

func main() {
	_ = godotenv.Load()

	logger := log.WithModule("indexer")

	command := &cli.Command{
		Name:                  "flowgen-indexer",
		Usage:                 "Index node definitions and workflow examples",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "nodes",
				Aliases: []string{"n"},
				Usage:   "Load node definition files into the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Usage:    "Directory of node definition JSON files",
						Required: true,
						Sources:  cli.EnvVars("NODES_PATH"),
					},
					&cli.StringFlag{
						Name:     "database-url",
						Usage:    "Postgres URL the catalog is written to",
						Required: true,
						Sources:  cli.EnvVars("DATABASE_URL"),
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					log.Setup(command.String("log-level"))

					return indexNodes(ctx, command, logger)
				},
			},
			{
				Name:    "workflows",
				Aliases: []string{"w"},
				Usage:   "Embed workflow example files into the vector store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Usage:    "Directory of workflow example JSON files",
						Required: true,
						Sources:  cli.EnvVars("WORKFLOWS_PATH"),
					},
					&cli.StringFlag{
						Name:    "qdrant-url",
						Usage:   "Base URL of the Qdrant vector store",
						Value:   "http://localhost:6333",
						Sources: cli.EnvVars("QDRANT_URL"),
					},
					&cli.StringFlag{
						Name:     "openai-api-key",
						Usage:    "API key for the OpenAI-compatible model endpoint",
						Required: true,
						Sources:  cli.EnvVars("OPENAI_API_KEY"),
					},
					&cli.StringFlag{
						Name:    "openai-base-url",
						Usage:   "Override the OpenAI API base URL",
						Sources: cli.EnvVars("OPENAI_BASE_URL"),
					},
					&cli.StringFlag{
						Name:    "openai-embed-model",
						Usage:   "Embedding model used for indexing",
						Sources: cli.EnvVars("OPENAI_EMBED_MODEL"),
					},
					&cli.StringFlag{
						Name:    "redis-url",
						Usage:   "Redis URL for the embedding cache (disabled when empty)",
						Sources: cli.EnvVars("REDIS_URL"),
					},
					&cli.StringFlag{
						Name:    "language",
						Usage:   "Language tag recorded on the indexed examples",
						Value:   "en",
						Sources: cli.EnvVars("INDEX_LANGUAGE"),
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					log.Setup(command.String("log-level"))

					return indexWorkflows(ctx, command, logger)
				},
			},
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		logger.Error("Indexer failed", "error", err)
		os.Exit(1)
	}
}
