// Package retrieval finds previously indexed workflows similar to a parsed
// query and re-ranks them with keyword evidence.
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/vector"
)

const (
	// DefaultLimit is the number of workflows returned when the caller
	// does not ask for a specific count.
	DefaultLimit = 5

	// simpleMaxScore and complexMinScore gate results by stored
	// complexity when the query states a preference.
	simpleMaxScore  = 30
	complexMinScore = 50

	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// Embedder turns query text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store is the slice of the vector store the retriever needs.
type Store interface {
	Available(ctx context.Context) bool
	Search(ctx context.Context, vector []float32, category string, limit int) ([]vector.ScoredPoint, error)
}

// Retriever runs similarity search and re-ranking. It never fails the
// request: when the store or embedder is down it returns no results.
type Retriever struct {
	embedder Embedder
	store    Store
	logger   *slog.Logger
}

func NewRetriever(embedder Embedder, store Store, logger *slog.Logger) *Retriever {
	return &Retriever{embedder: embedder, store: store, logger: logger}
}

// FindSimilar returns up to limit workflows ranked by the blend of semantic
// and keyword scores.
func (r *Retriever) FindSimilar(ctx context.Context, query models.SearchQuery, limit int) []models.RetrievedWorkflow {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if !r.store.Available(ctx) {
		r.logger.Warn("vector store unavailable, skipping retrieval")
		return nil
	}

	vec, err := r.embedder.Embed(ctx, query.OriginalText)
	if err != nil {
		r.logger.Warn("query embedding failed, skipping retrieval", "error", err)
		return nil
	}

	category := CategoryForQuery(query)
	// Over-fetch so the complexity gate still leaves enough candidates.
	hits, err := r.store.Search(ctx, vec, category, limit*2)
	if err != nil {
		r.logger.Warn("similarity search failed, skipping retrieval", "error", err)
		return nil
	}

	results := make([]models.RetrievedWorkflow, 0, len(hits))
	for _, hit := range hits {
		if !passesComplexityGate(query.ComplexityPreference, hit.Payload.ComplexityScore) {
			continue
		}
		results = append(results, r.score(query, hit))
	}

	rankResults(results)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// rankResults orders by adjusted score, then raw semantic score; remaining
// ties keep insertion order.
func rankResults(results []models.RetrievedWorkflow) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].AdjustedScore != results[j].AdjustedScore {
			return results[i].AdjustedScore > results[j].AdjustedScore
		}
		return results[i].SemanticScore > results[j].SemanticScore
	})
}

func (r *Retriever) score(query models.SearchQuery, hit vector.ScoredPoint) models.RetrievedWorkflow {
	keywordScore, matched := keywordMatch(query.Keywords, hit.Payload)
	adjusted := semanticWeight*hit.Score + keywordWeight*keywordScore

	result := models.RetrievedWorkflow{
		ID:              hit.ID,
		Name:            hit.Payload.Name,
		Description:     hit.Payload.Description,
		SemanticScore:   hit.Score,
		AdjustedScore:   adjusted,
		Tags:            hit.Payload.Tags,
		Category:        hit.Payload.Category,
		NodesCount:      hit.Payload.NodesCount,
		ComplexityScore: hit.Payload.ComplexityScore,
		MatchReasons:    matchReasons(hit.Score, matched, hit.Payload.Category),
		Suggestions:     suggestions(query, hit.Payload),
	}
	if hit.Payload.JSONContent != "" {
		var doc models.WorkflowDocument
		if err := json.Unmarshal([]byte(hit.Payload.JSONContent), &doc); err != nil {
			r.logger.Warn("stored workflow JSON is unreadable", "id", hit.ID, "error", err)
		} else {
			result.Document = &doc
		}
	}
	return result
}

// keywordMatch scores how well the query keywords appear in the stored
// workflow. A tag hit counts full, a description mention counts half.
func keywordMatch(keywords []string, payload vector.Payload) (float64, []string) {
	if len(keywords) == 0 {
		return 0, nil
	}

	tags := make(map[string]bool, len(payload.Tags))
	for _, tag := range payload.Tags {
		tags[strings.ToLower(tag)] = true
	}
	description := strings.ToLower(payload.Description)

	var sum float64
	var matched []string
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		switch {
		case tags[lower]:
			sum += 1.0
			matched = append(matched, kw)
		case strings.Contains(description, lower):
			sum += 0.5
			matched = append(matched, kw)
		}
	}
	return sum / float64(len(keywords)), matched
}

func passesComplexityGate(pref models.Complexity, score int) bool {
	switch pref {
	case models.ComplexitySimple:
		return score <= simpleMaxScore
	case models.ComplexityComplex:
		return score >= complexMinScore
	default:
		return true
	}
}

// CategoryForQuery maps the extracted keywords onto a stored workflow
// category, or "" when no keyword implies one.
func CategoryForQuery(query models.SearchQuery) string {
	switch {
	case query.HasKeyword("telegram"):
		return "messaging"
	case query.HasKeyword("email") || query.HasKeyword("gmail") || query.HasKeyword("outlook"):
		return "email"
	case query.HasKeyword("database") || query.HasKeyword("mysql") || query.HasKeyword("postgres"):
		return "database"
	case query.HasKeyword("api") || query.HasKeyword("webhook"):
		return "api"
	default:
		return ""
	}
}

func matchReasons(semantic float64, matchedKeywords []string, category string) []string {
	var reasons []string
	switch {
	case semantic >= 0.85:
		reasons = append(reasons, "very close semantic match")
	case semantic >= 0.7:
		reasons = append(reasons, "close semantic match")
	}
	if len(matchedKeywords) > 0 {
		reasons = append(reasons, fmt.Sprintf("matches keywords: %s", strings.Join(matchedKeywords, ", ")))
	}
	if category != "" {
		reasons = append(reasons, fmt.Sprintf("same category: %s", category))
	}
	return reasons
}

// suggestions hints how an example would need to change to fit the query.
// suggestions advises on adapting a candidate to the query. Complexity is
// not mentioned here: candidates already passed the complexity gate.
func suggestions(query models.SearchQuery, payload vector.Payload) []string {
	var out []string
	for _, service := range query.Entities["services"] {
		if !containsFold(payload.Tags, service) {
			out = append(out, fmt.Sprintf("swap the integration node for %s", service))
		}
	}
	return out
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
