package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"

	"github.com/ugnislab/flowgen/pkg/cmd"
	"github.com/ugnislab/flowgen/pkg/log"
)

const defaultPort = 9090

func main() {
	_ = godotenv.Load()

	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "flowgen-api",
		Usage:                 "Generate n8n workflows from natural language",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
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
				Name:    "openai-chat-model",
				Usage:   "Chat model used for workflow generation",
				Sources: cli.EnvVars("OPENAI_CHAT_MODEL"),
			},
			&cli.StringFlag{
				Name:    "openai-embed-model",
				Usage:   "Embedding model used for similarity search",
				Sources: cli.EnvVars("OPENAI_EMBED_MODEL"),
			},
			&cli.StringFlag{
				Name:    "qdrant-url",
				Usage:   "Base URL of the Qdrant vector store",
				Value:   "http://localhost:6333",
				Sources: cli.EnvVars("QDRANT_URL"),
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Redis URL for the embedding cache (disabled when empty)",
				Sources: cli.EnvVars("REDIS_URL"),
			},
			&cli.StringFlag{
				Name:    "n8n-url",
				Usage:   "Base URL of the n8n instance workflows are published to",
				Value:   "http://localhost:5678",
				Sources: cli.EnvVars("N8N_URL"),
			},
			&cli.StringFlag{
				Name:    "n8n-api-key",
				Usage:   "API key for the n8n instance",
				Sources: cli.EnvVars("N8N_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Postgres URL for the node catalog (in-memory when empty)",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "nodes-path",
				Usage:   "Directory of node definition files loaded into the catalog",
				Sources: cli.EnvVars("NODES_PATH"),
			},
			&cli.StringFlag{
				Name:    "default-language",
				Usage:   "Language assumed when detection is inconclusive (lv, ru, en)",
				Value:   "en",
				Sources: cli.EnvVars("DEFAULT_LANGUAGE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Flowgen API")

			cat := cmd.NewCatalog(ctx, command.String("database-url"), command.String("nodes-path"), logger)
			client := cmd.NewLLMClient(cmd.LLMConfig{
				APIKey:     command.String("openai-api-key"),
				BaseURL:    command.String("openai-base-url"),
				ChatModel:  command.String("openai-chat-model"),
				EmbedModel: command.String("openai-embed-model"),
				RedisURL:   command.String("redis-url"),
			}, logger)
			store := cmd.NewVectorStore(command.String("qdrant-url"), logger)
			runtime, manager := cmd.NewRuntime(command.String("n8n-url"), command.String("n8n-api-key"), logger)

			api := NewAPI(logger, cat, client, store, runtime, manager, command.String("default-language"))

			err := api.Start(command.Int("port"))
			if err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
