// Package cmd provides common initialization functions for command-line applications.
package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ugnislab/flowgen/pkg/llm"
)

// LLMConfig carries the flag values the commands share for model access.
type LLMConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	EmbedModel string
	RedisURL   string
}

// NewLLMClient builds the OpenAI-backed client, wrapped in the Redis
// embedding cache when a redis URL is configured.
func NewLLMClient(cfg LLMConfig, logger *slog.Logger) llm.Client {
	client := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		ChatModel:  cfg.ChatModel,
		EmbedModel: cfg.EmbedModel,
	}, logger)

	if cfg.RedisURL == "" {
		return client
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic(err)
	}

	embedModel := cfg.EmbedModel
	if embedModel == "" {
		embedModel = llm.DefaultEmbedModel
	}

	return llm.NewCachedClient(client, redis.NewClient(opts), embedModel, logger)
}
