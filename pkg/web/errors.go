package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/pipeline"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func unavailable(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(503).
		WithInstance(c.Path()).
		WithType("dependency_unavailable").
		WithDetail(detail)

	return c.Status(fiber.StatusServiceUnavailable).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handlePipelineError maps classified stage failures onto problem responses.
func handlePipelineError(c fiber.Ctx, err error) error {
	switch {
	case pipeline.IsEmptyQuery(err):
		return badRequest(c, "query must not be empty")
	case pipeline.IsRetrievalUnavailable(err):
		return unavailable(c, "similarity search is unavailable")
	case pipeline.IsRuntimeUnavailable(err):
		return unavailable(c, "workflow runtime is unavailable")
	case catalog.IsNodeTypeNotFound(err):
		return notFound(c, "node type not found")
	default:
		return internalError(c, err)
	}
}
