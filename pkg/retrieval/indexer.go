package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/vector"
)

const (
	maxTags            = 10
	maxComplexityScore = 100

	nodeScoreWeight = 2
	heavyNodeScore  = 5
)

// heavyNodeTypes cost extra complexity because they run code or talk to the
// outside world.
var heavyNodeTypes = map[string]bool{
	"function":    true,
	"code":        true,
	"httpRequest": true,
	"webhook":     true,
}

// IndexStore is the write side of the vector store used when indexing.
type IndexStore interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, points []vector.Point) error
}

// Indexer extracts features from workflow documents, embeds them and stores
// them for later retrieval.
type Indexer struct {
	embedder Embedder
	store    IndexStore
	logger   *slog.Logger
}

func NewIndexer(embedder Embedder, store IndexStore, logger *slog.Logger) *Indexer {
	return &Indexer{embedder: embedder, store: store, logger: logger}
}

// IndexOptions carries metadata not derivable from the document itself.
type IndexOptions struct {
	Description string
	Language    string
}

// IndexWorkflow stores one workflow and returns the assigned point id.
func (ix *Indexer) IndexWorkflow(ctx context.Context, doc *models.WorkflowDocument, opts IndexOptions) (string, error) {
	if err := ix.store.EnsureCollection(ctx); err != nil {
		return "", fmt.Errorf("ensure collection: %w", err)
	}

	payload, err := buildPayload(doc, opts)
	if err != nil {
		return "", err
	}

	vec, err := ix.embedder.Embed(ctx, embeddingText(payload))
	if err != nil {
		return "", fmt.Errorf("embed workflow %q: %w", doc.Name, err)
	}

	id := uuid.NewString()
	point := vector.Point{ID: id, Vector: vec, Payload: payload}
	if err := ix.store.Upsert(ctx, []vector.Point{point}); err != nil {
		return "", fmt.Errorf("store workflow %q: %w", doc.Name, err)
	}

	ix.logger.Info("workflow indexed",
		"id", id,
		"name", payload.Name,
		"category", payload.Category,
		"complexity_score", payload.ComplexityScore)
	return id, nil
}

func buildPayload(doc *models.WorkflowDocument, opts IndexOptions) (vector.Payload, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return vector.Payload{}, fmt.Errorf("encode workflow %q: %w", doc.Name, err)
	}

	return vector.Payload{
		Name:            doc.Name,
		Description:     opts.Description,
		Category:        DeriveCategory(doc),
		Tags:            deriveTags(doc),
		NodesCount:      len(doc.Nodes),
		ComplexityScore: ComplexityScore(doc),
		Language:        opts.Language,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		JSONContent:     string(raw),
	}, nil
}

// ComplexityScore estimates how involved a workflow is. Each node counts
// double, each connection target counts once and heavy nodes add a
// surcharge. The score is capped so outliers stay comparable.
func ComplexityScore(doc *models.WorkflowDocument) int {
	score := nodeScoreWeight * len(doc.Nodes)
	score += connectionCount(doc)
	for _, node := range doc.Nodes {
		if node != nil && heavyNodeTypes[typeSuffix(node.Type)] {
			score += heavyNodeScore
		}
	}
	if score > maxComplexityScore {
		score = maxComplexityScore
	}
	return score
}

func connectionCount(doc *models.WorkflowDocument) int {
	count := 0
	for _, spec := range doc.Connections {
		for _, groups := range spec {
			for _, group := range groups {
				count += len(group)
			}
		}
	}
	return count
}

// deriveTags lists the distinct node-type suffixes, sorted, capped.
func deriveTags(doc *models.WorkflowDocument) []string {
	seen := make(map[string]bool)
	for _, node := range doc.Nodes {
		if node == nil || node.Type == "" {
			continue
		}
		seen[typeSuffix(node.Type)] = true
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// DeriveCategory picks the dominant integration category from the node
// types, falling back to "general".
func DeriveCategory(doc *models.WorkflowDocument) string {
	for _, node := range doc.Nodes {
		if node == nil {
			continue
		}
		suffix := strings.ToLower(typeSuffix(node.Type))
		switch {
		case strings.Contains(suffix, "telegram"),
			strings.Contains(suffix, "slack"),
			strings.Contains(suffix, "discord"),
			strings.Contains(suffix, "whatsapp"):
			return "messaging"
		case strings.Contains(suffix, "email"),
			strings.Contains(suffix, "gmail"),
			strings.Contains(suffix, "outlook"):
			return "email"
		case strings.Contains(suffix, "postgres"),
			strings.Contains(suffix, "mysql"),
			strings.Contains(suffix, "mongo"):
			return "database"
		}
	}
	for _, node := range doc.Nodes {
		if node == nil {
			continue
		}
		suffix := strings.ToLower(typeSuffix(node.Type))
		if strings.Contains(suffix, "webhook") || strings.Contains(suffix, "httprequest") {
			return "api"
		}
	}
	return "general"
}

func typeSuffix(nodeType string) string {
	if i := strings.LastIndex(nodeType, "."); i >= 0 {
		return nodeType[i+1:]
	}
	return nodeType
}

func embeddingText(p vector.Payload) string {
	parts := []string{p.Name}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	if len(p.Tags) > 0 {
		parts = append(parts, "uses: "+strings.Join(p.Tags, ", "))
	}
	return strings.Join(parts, ". ")
}
