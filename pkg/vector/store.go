// Package vector stores workflow embeddings in Qdrant and runs similarity
// search over them. The store is optional at runtime; callers check
// Available and degrade to non-retrieval behavior when it is down.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// CollectionName holds the indexed workflow examples.
	CollectionName = "workflow_examples"
	// VectorSize matches the embedding model output dimension.
	VectorSize = 1536

	requestTimeout = 15 * time.Second
)

// Payload is the metadata stored alongside each workflow vector.
type Payload struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	NodesCount      int      `json:"nodes_count"`
	ComplexityScore int      `json:"complexity_score"`
	Language        string   `json:"language"`
	CreatedAt       string   `json:"created_at"`
	JSONContent     string   `json:"json_content"`
}

// Point is a stored workflow vector with its metadata.
type Point struct {
	ID      string
	Vector  []float32
	Payload Payload
}

// ScoredPoint is a search hit with its cosine similarity score.
type ScoredPoint struct {
	ID      string
	Score   float64
	Payload Payload
}

// Stats summarizes the collection state.
type Stats struct {
	PointsCount int    `json:"points_count"`
	Status      string `json:"status"`
}

// Store is a Qdrant REST client scoped to one collection.
type Store struct {
	baseURL    string
	collection string
	client     *http.Client
	logger     *slog.Logger
}

// NewStore returns a store for the workflow collection at baseURL, e.g.
// "http://localhost:6333".
func NewStore(baseURL string, logger *slog.Logger) *Store {
	return &Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: CollectionName,
		client:     &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Available reports whether the Qdrant instance answers at all.
func (s *Store) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/collections", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// EnsureCollection creates the collection if it does not exist yet. An
// already-existing collection is not an error.
func (s *Store) EnsureCollection(ctx context.Context) error {
	body := map[string]any{
		"vectors": map[string]any{
			"size":     VectorSize,
			"distance": "Cosine",
		},
	}
	status, raw, err := s.do(ctx, http.MethodPut, s.collectionPath(""), body)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}
	// Qdrant answers 409 when the collection already exists.
	if status == http.StatusConflict {
		return nil
	}
	return fmt.Errorf("create collection: status %d: %s", status, truncate(raw))
}

// Upsert writes points into the collection, waiting for the write to be
// applied so an immediately following search sees them.
func (s *Store) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	items := make([]map[string]any, 0, len(points))
	for _, p := range points {
		items = append(items, map[string]any{
			"id":      p.ID,
			"vector":  p.Vector,
			"payload": p.Payload,
		})
	}
	status, raw, err := s.do(ctx, http.MethodPut,
		s.collectionPath("/points")+"?wait=true",
		map[string]any{"points": items})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("upsert points: status %d: %s", status, truncate(raw))
	}
	return nil
}

// Search returns the limit nearest points to vector. A non-empty category
// restricts results to points with that payload category.
func (s *Store) Search(ctx context.Context, vector []float32, category string, limit int) ([]ScoredPoint, error) {
	body := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	if category != "" {
		body["filter"] = map[string]any{
			"must": []map[string]any{
				{"key": "category", "match": map[string]any{"value": category}},
			},
		}
	}

	status, raw, err := s.do(ctx, http.MethodPost, s.collectionPath("/points/search"), body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search points: status %d: %s", status, truncate(raw))
	}

	var parsed struct {
		Result []struct {
			ID      any     `json:"id"`
			Score   float64 `json:"score"`
			Payload Payload `json:"payload"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]ScoredPoint, 0, len(parsed.Result))
	for _, hit := range parsed.Result {
		out = append(out, ScoredPoint{
			ID:      fmt.Sprint(hit.ID),
			Score:   hit.Score,
			Payload: hit.Payload,
		})
	}
	return out, nil
}

// Retrieve fetches a single point by id.
func (s *Store) Retrieve(ctx context.Context, id string) (*ScoredPoint, error) {
	status, raw, err := s.do(ctx, http.MethodGet,
		s.collectionPath("/points/"+url.PathEscape(id)), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("point %s not found", id)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("retrieve point: status %d: %s", status, truncate(raw))
	}

	var parsed struct {
		Result struct {
			ID      any     `json:"id"`
			Payload Payload `json:"payload"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode point response: %w", err)
	}
	return &ScoredPoint{ID: fmt.Sprint(parsed.Result.ID), Payload: parsed.Result.Payload}, nil
}

// Stats reports how many points the collection holds.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	status, raw, err := s.do(ctx, http.MethodGet, s.collectionPath(""), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("collection info: status %d: %s", status, truncate(raw))
	}

	var parsed struct {
		Result struct {
			PointsCount int    `json:"points_count"`
			Status      string `json:"status"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode collection info: %w", err)
	}
	return &Stats{PointsCount: parsed.Result.PointsCount, Status: parsed.Result.Status}, nil
}

func (s *Store) collectionPath(suffix string) string {
	return "/collections/" + s.collection + suffix
}

func (s *Store) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func truncate(raw []byte) string {
	const max = 200
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
