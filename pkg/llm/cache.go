package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const embeddingCacheTTL = 24 * time.Hour

// CachedClient caches embedding vectors in Redis keyed by a hash of the
// input text. Completions are never cached; every generation should reach
// the model. Cache failures degrade to a direct call.
type CachedClient struct {
	inner      Client
	rdb        *redis.Client
	embedModel string
	logger     *slog.Logger
}

// NewCachedClient wraps inner with a Redis embedding cache. The embed model
// is part of the cache key so switching models never serves stale vectors.
func NewCachedClient(inner Client, rdb *redis.Client, embedModel string, logger *slog.Logger) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb, embedModel: embedModel, logger: logger}
}

func (c *CachedClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return c.inner.Complete(ctx, req)
}

func (c *CachedClient) Embed(ctx context.Context, text string) ([]float32, error) {
	key := embeddingKey(c.embedModel, text)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var vec []float32
		if err := json.Unmarshal(cached, &vec); err == nil {
			return vec, nil
		}
		c.logger.Warn("dropping unreadable cached embedding", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("embedding cache read failed", "error", err)
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(vec)
	if err == nil {
		if err := c.rdb.Set(ctx, key, encoded, embeddingCacheTTL).Err(); err != nil {
			c.logger.Warn("embedding cache write failed", "error", err)
		}
	}
	return vec, nil
}

func embeddingKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return fmt.Sprintf("flowgen:embedding:%s", hex.EncodeToString(sum[:]))
}
