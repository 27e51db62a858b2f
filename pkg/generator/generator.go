// Package generator drives one workflow generation attempt from prompt
// composition through validation, repair and fallback.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ugnislab/flowgen/pkg/llm"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/prompt"
)

const (
	// Generation runs at low temperature; workflow JSON rewards
	// determinism over creativity.
	generationTemperature = 0.3
	generationMaxTokens   = 4000
	generationTimeout     = 90 * time.Second
)

// Validator is the slice of workflow validation the generator needs.
type Validator interface {
	Validate(ctx context.Context, doc *models.WorkflowDocument) models.ValidationReport
}

// Generator produces workflow documents from generation contexts. Generate
// always returns a usable result; every failure path degrades to the
// fallback workflow instead of erroring.
type Generator struct {
	llm       llm.Client
	composer  *prompt.Composer
	validator Validator
	logger    *slog.Logger
}

func New(client llm.Client, validator Validator, logger *slog.Logger) *Generator {
	return &Generator{
		llm:       client,
		composer:  prompt.NewComposer(),
		validator: validator,
		logger:    logger,
	}
}

// modelResponse is the JSON shape the system prompt demands.
type modelResponse struct {
	Workflow          *models.WorkflowDocument `json:"workflow"`
	SetupInstructions []string                 `json:"setup_instructions"`
	Explanation       string                   `json:"explanation"`
}

// Generate runs the full attempt for gctx.
func (g *Generator) Generate(ctx context.Context, gctx models.GenerationContext) *models.GenerationResult {
	composed := g.composer.Compose(gctx)

	invokeCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := g.llm.Complete(invokeCtx, llm.CompletionRequest{
		SystemPrompt: composed.System,
		UserPrompt:   composed.User,
		Temperature:  generationTemperature,
		MaxTokens:    generationMaxTokens,
	})
	if err != nil {
		g.logger.Warn("model invocation failed, using fallback", "error", err)
		return fallbackResult(gctx.Language, []string{fmt.Sprintf("model invocation failed: %v", err)})
	}

	extracted, ok := ExtractJSON(raw)
	if !ok {
		g.logger.Warn("no JSON object in model response, using fallback")
		return fallbackResult(gctx.Language, []string{"model response contained no JSON object"})
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(extracted), &resp); err != nil {
		g.logger.Warn("model JSON is unreadable, using fallback", "error", err)
		return fallbackResult(gctx.Language, []string{fmt.Sprintf("model JSON is unreadable: %v", err)})
	}

	result := &models.GenerationResult{
		Workflow:          resp.Workflow,
		SetupInstructions: resp.SetupInstructions,
		Explanation:       resp.Explanation,
		Errors:            []string{},
	}
	if result.SetupInstructions == nil {
		result.SetupInstructions = []string{}
	}

	report := g.validator.Validate(ctx, result.Workflow)
	if report.Valid {
		return result
	}

	g.logger.Info("generated workflow failed validation, repairing",
		"errors", len(report.Errors))
	repaired := repair(result, report.Errors)

	// The repaired document is returned either way; revalidation only
	// refreshes the findings the caller sees. The fallback is reserved
	// for invocations that produced no workflow at all.
	if repairedReport := g.validator.Validate(ctx, repaired.Workflow); !repairedReport.Valid {
		g.logger.Warn("repaired workflow still has validation findings",
			"errors", len(repairedReport.Errors))
		repaired.Errors = repairedReport.Errors
	}

	return repaired
}
