package web

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/n8n"
	"github.com/ugnislab/flowgen/pkg/pipeline"
	"github.com/ugnislab/flowgen/pkg/vector"
	"github.com/ugnislab/flowgen/pkg/workflow"
)

const (
	errorPenalty   = 20
	warningPenalty = 5

	defaultNodesLimit = 50
)

// APIHandlers owns the HTTP surface. Every handler answers a structured
// body; raw transport faults never reach the client.
type APIHandlers struct {
	pipeline    *pipeline.Pipeline
	wfValidator *workflow.Validator
	catalog     catalog.Catalog
	manager     *n8n.Manager
	runtime     *n8n.Client
	store       *vector.Store
	validator   *validator.Validate
}

func NewAPIHandlers(
	p *pipeline.Pipeline,
	wfValidator *workflow.Validator,
	cat catalog.Catalog,
	manager *n8n.Manager,
	runtime *n8n.Client,
	store *vector.Store,
	validate *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		pipeline:    p,
		wfValidator: wfValidator,
		catalog:     cat,
		manager:     manager,
		runtime:     runtime,
		store:       store,
		validator:   validate,
	}
}

func (h *APIHandlers) GenerateWorkflow(c fiber.Ctx) error {
	var req GenerateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.pipeline.Generate(c.Context(), pipeline.GenerateRequest{
		Query:      req.Query,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(resp)
}

func (h *APIHandlers) SearchWorkflows(c fiber.Ctx) error {
	var req SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	results, parsed, err := h.pipeline.Search(c.Context(), req.Query, req.MaxResults)
	if err != nil {
		return handlePipelineError(c, err)
	}

	resp := SearchResponse{
		Success:       true,
		QueryAnalysis: pipeline.Analysis(*parsed),
		Results:       results,
	}
	if len(results) == 0 {
		resp.Message = language.StatusMessage(parsed.Language, "no_results")
		resp.Results = []models.RetrievedWorkflow{}
	}

	return c.JSON(resp)
}

// ValidateWorkflow reports findings plus a quality score. Unknown node
// types are reclassified as warnings here: the workflow may target node
// packages this service does not know about.
func (h *APIHandlers) ValidateWorkflow(c fiber.Ctx) error {
	var req ValidateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	report := h.wfValidator.Validate(c.Context(), req.Workflow)

	errs := make([]string, 0, len(report.Errors))
	warnings := make([]string, 0)
	for _, finding := range report.Errors {
		if strings.Contains(finding, "has unknown type") {
			warnings = append(warnings, finding)
		} else {
			errs = append(errs, finding)
		}
	}

	return c.JSON(ValidateResponse{
		Valid:        len(errs) == 0,
		Errors:       errs,
		Warnings:     warnings,
		QualityScore: qualityScore(len(errs), len(warnings)),
	})
}

func qualityScore(errs, warnings int) int {
	score := 100 - errs*errorPenalty - warnings*warningPenalty
	if score < 0 {
		return 0
	}
	return score
}

func (h *APIHandlers) ListNodes(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", defaultNodesLimit)

	var (
		defs []models.NodeDefinition
		err  error
	)
	if search := c.Query("search"); search != "" {
		defs, err = h.catalog.Search(c.Context(), search, limit)
	} else {
		defs, err = h.catalog.List(c.Context(), limit)
	}
	if err != nil {
		return internalError(c, err)
	}

	summaries := make([]models.NodeSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, def.Summary())
	}

	return c.JSON(fiber.Map{
		"nodes": summaries,
		"count": len(summaries),
	})
}

func (h *APIHandlers) GetNode(c fiber.Ctx) error {
	def, err := h.catalog.Get(c.Context(), c.Params("type"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(def)
}

func (h *APIHandlers) PublishWorkflow(c fiber.Ctx) error {
	var req PublishRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result := h.manager.Publish(c.Context(), req.Workflow, n8n.PublishOptions{
		Activate: req.Activate,
		Test:     req.TestExecution,
	})

	return c.JSON(result)
}

func (h *APIHandlers) GenerateAndPublish(c fiber.Ctx) error {
	var req GenerateAndPublishRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	generation, err := h.pipeline.Generate(c.Context(), pipeline.GenerateRequest{
		Query:      req.Query,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		return handlePipelineError(c, err)
	}

	resp := GenerateAndPublishResponse{Generation: generation}
	// A fallback workflow is a degraded answer; publishing it would only
	// pollute the runtime.
	if generation.GeneratedWorkflow != nil && !generation.FallbackUsed {
		result := h.manager.Publish(c.Context(), generation.GeneratedWorkflow, n8n.PublishOptions{
			Activate: req.Activate,
			Test:     req.TestExecution,
		})
		resp.Upload = &result
	}

	return c.JSON(resp)
}

func (h *APIHandlers) ListRuntimeWorkflows(c fiber.Ctx) error {
	infos, result := h.runtime.List(c.Context())
	if !result.Success {
		return c.JSON(fiber.Map{"success": false, "message": result.Message})
	}

	return c.JSON(fiber.Map{"success": true, "workflows": infos})
}

func (h *APIHandlers) ActivateRuntimeWorkflow(c fiber.Ctx) error {
	return c.JSON(h.runtime.Activate(c.Context(), c.Params("id")))
}

func (h *APIHandlers) DeactivateRuntimeWorkflow(c fiber.Ctx) error {
	return c.JSON(h.runtime.Deactivate(c.Context(), c.Params("id")))
}

func (h *APIHandlers) DeleteRuntimeWorkflow(c fiber.Ctx) error {
	return c.JSON(h.runtime.Delete(c.Context(), c.Params("id")))
}

func (h *APIHandlers) TestRuntimeWorkflow(c fiber.Ctx) error {
	return c.JSON(h.runtime.Execute(c.Context(), c.Params("id")))
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	components := map[string]bool{
		"vector_store": h.store.Available(c.Context()),
		"runtime":      h.runtime.Available(c.Context()),
	}
	if _, err := h.catalog.Len(c.Context()); err == nil {
		components["catalog"] = true
	} else {
		components["catalog"] = false
	}

	status := "ok"
	for _, up := range components {
		if !up {
			status = "degraded"

			break
		}
	}

	return c.JSON(HealthResponse{Status: status, Components: components})
}

func (h *APIHandlers) Stats(c fiber.Ctx) error {
	resp := StatsResponse{Uploads: h.manager.Stats()}

	if count, err := h.catalog.Len(c.Context()); err == nil {
		resp.CatalogNodes = count
	}
	if stats, err := h.store.Stats(c.Context()); err == nil {
		resp.Vector = &vectorStats{Points: stats.PointsCount, Status: stats.Status}
	}

	return c.JSON(resp)
}
