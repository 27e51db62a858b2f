package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ugnislab/flowgen/pkg/catalog"
	"github.com/ugnislab/flowgen/pkg/models"
)

// Validator checks workflow documents against structural rules and the
// node catalog. It accumulates every finding instead of stopping at the
// first one.
type Validator struct {
	catalog catalog.Catalog
	logger  *slog.Logger
}

func NewValidator(cat catalog.Catalog, logger *slog.Logger) *Validator {
	return &Validator{catalog: cat, logger: logger}
}

// Validate reports every structural problem in doc. A workflow with a name
// and zero nodes is valid.
func (v *Validator) Validate(ctx context.Context, doc *models.WorkflowDocument) models.ValidationReport {
	report := models.ValidationReport{Errors: []string{}}
	if doc == nil {
		report.Errors = append(report.Errors, "workflow document is missing")
		return report
	}

	if doc.Name == "" {
		report.Errors = append(report.Errors, "workflow is missing required field: name")
	}
	if doc.Nodes == nil {
		report.Errors = append(report.Errors, "workflow is missing required field: nodes")
	}
	if doc.Connections == nil {
		report.Errors = append(report.Errors, "workflow is missing required field: connections")
	}

	seen := map[string]bool{}
	for i, node := range doc.Nodes {
		v.validateNode(ctx, i, node, &report)
		if node == nil || node.Name == "" {
			continue
		}
		if seen[node.Name] {
			report.Errors = append(report.Errors,
				fmt.Sprintf("node name %q is used more than once", node.Name))
		}
		seen[node.Name] = true
	}
	validateConnections(doc, &report)

	report.Valid = len(report.Errors) == 0
	return report
}

func (v *Validator) validateNode(ctx context.Context, index int, node *models.Node, report *models.ValidationReport) {
	label := fmt.Sprintf("node %d", index)
	if node == nil {
		report.Errors = append(report.Errors, label+" is null")
		return
	}
	if node.Name != "" {
		label = fmt.Sprintf("node %q", node.Name)
	} else {
		report.Errors = append(report.Errors, label+" is missing required field: name")
	}
	if node.Type == "" {
		report.Errors = append(report.Errors, label+" is missing required field: type")
		return
	}

	def, err := v.catalog.Get(ctx, node.Type)
	if err != nil {
		if catalog.IsNodeTypeNotFound(err) {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s has unknown type %q", label, node.Type))
		} else {
			// Catalog lookups should not fail a validation run.
			v.logger.Warn("catalog lookup failed", "type", node.Type, "error", err)
		}
		return
	}

	v.validateParameters(label, node, def, report)
}

func (v *Validator) validateParameters(label string, node *models.Node, def *models.NodeDefinition, report *models.ValidationReport) {
	if len(def.Parameters) == 0 {
		return
	}

	schema, err := parameterSchema(def)
	if err != nil {
		v.logger.Warn("parameter schema unusable", "type", def.Type, "error", err)
		return
	}

	params := node.Parameters
	if params == nil {
		params = map[string]any{}
	}
	result, err := schema.Validate(gojsonLoader(params))
	if err != nil {
		v.logger.Warn("parameter validation failed", "type", def.Type, "error", err)
		return
	}
	for _, issue := range result.Errors() {
		report.Errors = append(report.Errors,
			fmt.Sprintf("%s parameters: %s", label, issue.String()))
	}
}

// validateConnections checks referential integrity. Every dangling name,
// whether a source key or a target, yields exactly one error.
func validateConnections(doc *models.WorkflowDocument, report *models.ValidationReport) {
	names := doc.NodeNames()

	sources := make([]string, 0, len(doc.Connections))
	for source := range doc.Connections {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		spec := doc.Connections[source]
		if !names[source] {
			report.Errors = append(report.Errors,
				fmt.Sprintf("connections reference unknown node %q", source))
		}
		for _, groups := range spec {
			for _, group := range groups {
				for _, target := range group {
					if !names[target.Node] {
						report.Errors = append(report.Errors,
							fmt.Sprintf("connection from %q targets unknown node %q", source, target.Node))
					}
				}
			}
		}
	}
}
