// Package pipeline wires interpretation, retrieval, generation and
// assembly into the operations the HTTP layer exposes.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/generator"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/query"
	"github.com/ugnislab/flowgen/pkg/retrieval"
)

const maxPromptNodes = 10

// GenerateRequest is the inbound generation request after DTO validation.
type GenerateRequest struct {
	Query      string
	MaxResults int
}

// Pipeline owns one instance of every stage. It is safe for concurrent
// requests; all stages are stateless or internally synchronized.
type Pipeline struct {
	interpreter *query.Interpreter
	retriever   *retrieval.Retriever
	store       retrieval.Store
	generator   *generator.Generator
	catalog     catalog.Catalog
	logger      *slog.Logger
}

func New(
	interpreter *query.Interpreter,
	retriever *retrieval.Retriever,
	store retrieval.Store,
	gen *generator.Generator,
	cat catalog.Catalog,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		interpreter: interpreter,
		retriever:   retriever,
		store:       store,
		generator:   gen,
		catalog:     cat,
		logger:      logger,
	}
}

// Generate runs the full chain for one request. It never returns an error
// for degraded stages; only an empty query is rejected outright.
func (p *Pipeline) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	parsed := p.interpreter.Parse(req.Query)
	p.logger.Info("query interpreted",
		"language", parsed.Language,
		"intent", parsed.Intent,
		"keywords", len(parsed.Keywords))

	similar := p.retriever.FindSimilar(ctx, parsed, req.MaxResults)

	gctx := models.GenerationContext{
		UserQuery:            req.Query,
		Query:                parsed,
		SimilarWorkflows:     similar,
		AvailableNodes:       p.relevantNodes(ctx, parsed),
		Language:             parsed.Language,
		ComplexityPreference: parsed.ComplexityPreference,
	}

	result := p.generator.Generate(ctx, gctx)
	return assemble(parsed, len(similar), result), nil
}

// Search returns ranked similar workflows without generating anything.
// Unlike generation, search has nothing to offer when the store is down,
// so unavailability is an error here.
func (p *Pipeline) Search(ctx context.Context, text string, maxResults int) ([]models.RetrievedWorkflow, *models.SearchQuery, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrEmptyQuery
	}
	if !p.store.Available(ctx) {
		return nil, nil, ErrRetrievalUnavailable
	}

	parsed := p.interpreter.Parse(text)
	results := p.retriever.FindSimilar(ctx, parsed, maxResults)
	return results, &parsed, nil
}

// relevantNodes picks catalog entries for the prompt: keyword matches
// first, then generic entries until the cap is reached.
func (p *Pipeline) relevantNodes(ctx context.Context, parsed models.SearchQuery) []models.NodeSummary {
	seen := make(map[string]bool)
	var out []models.NodeSummary

	add := func(defs []models.NodeDefinition) {
		for _, def := range defs {
			if seen[def.Type] || len(out) >= maxPromptNodes {
				continue
			}
			seen[def.Type] = true
			out = append(out, def.Summary())
		}
	}

	for _, kw := range parsed.Keywords {
		if len(out) >= maxPromptNodes {
			break
		}
		defs, err := p.catalog.Search(ctx, kw, maxPromptNodes)
		if err != nil {
			p.logger.Warn("catalog search failed", "keyword", kw, "error", err)
			continue
		}
		add(defs)
	}

	if len(out) < maxPromptNodes {
		defs, err := p.catalog.List(ctx, maxPromptNodes)
		if err != nil {
			p.logger.Warn("catalog listing failed", "error", err)
		} else {
			add(defs)
		}
	}
	return out
}
