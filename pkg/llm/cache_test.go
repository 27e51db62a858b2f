package llm

import (
	"context"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	embedCalls int
	vec        []float32
}

func (s *stubClient) Complete(context.Context, CompletionRequest) (string, error) {
	return "ok", nil
}

func (s *stubClient) Embed(context.Context, string) ([]float32, error) {
	s.embedCalls++
	return s.vec, nil
}

func TestCachedClientDegradesWithoutRedis(t *testing.T) {
	stub := &stubClient{vec: []float32{0.1, 0.2}}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	c := NewCachedClient(stub, rdb, DefaultEmbedModel, slog.New(slog.DiscardHandler))

	vec, err := c.Embed(t.Context(), "create a webhook")
	require.NoError(t, err)
	assert.Equal(t, stub.vec, vec)
	assert.Equal(t, 1, stub.embedCalls)
}

func TestCachedClientPassesCompletionsThrough(t *testing.T) {
	stub := &stubClient{}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	c := NewCachedClient(stub, rdb, DefaultEmbedModel, slog.New(slog.DiscardHandler))

	out, err := c.Complete(t.Context(), CompletionRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestEmbeddingKeyIsStable(t *testing.T) {
	assert.Equal(t, embeddingKey("m1", "abc"), embeddingKey("m1", "abc"))
	assert.NotEqual(t, embeddingKey("m1", "abc"), embeddingKey("m1", "abd"))
	// A model switch must miss the cache of the previous model.
	assert.NotEqual(t, embeddingKey("m1", "abc"), embeddingKey("m2", "abc"))
}
