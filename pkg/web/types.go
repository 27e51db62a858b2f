// Package web provides HTTP request and response types for the generation API.
package web

import (
	"github.com/ugnislab/flowgen/pkg/models"
	"github.com/ugnislab/flowgen/pkg/n8n"
	"github.com/ugnislab/flowgen/pkg/pipeline"
)

// GenerateRequest is the request body for generating a workflow.
type GenerateRequest struct {
	Query      string `json:"query"       validate:"required,min=1"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=20"`
}

// SearchRequest is the request body for finding similar workflows.
type SearchRequest struct {
	Query      string `json:"query"       validate:"required,min=1"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=20"`
}

// SearchResponse carries the ranked matches plus the query interpretation.
type SearchResponse struct {
	Success       bool                       `json:"success"`
	Message       string                     `json:"message,omitempty"`
	QueryAnalysis pipeline.QueryAnalysis     `json:"query_analysis"`
	Results       []models.RetrievedWorkflow `json:"results"`
}

// ValidateRequest is the request body for validating a workflow document.
type ValidateRequest struct {
	Workflow *models.WorkflowDocument `json:"workflow" validate:"required"`
}

// ValidateResponse reports findings plus a coarse quality score. Unknown
// node types are warnings at this boundary; a workflow can still be useful
// with a type the catalog has not seen.
type ValidateResponse struct {
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	QualityScore int      `json:"quality_score"`
}

// PublishRequest is the request body for uploading a workflow to the
// runtime.
type PublishRequest struct {
	Workflow      *models.WorkflowDocument `json:"workflow"       validate:"required"`
	Activate      bool                     `json:"activate"`
	TestExecution bool                     `json:"test_execution"`
}

// GenerateAndPublishRequest combines generation and publishing in one call.
type GenerateAndPublishRequest struct {
	Query         string `json:"query"          validate:"required,min=1"`
	MaxResults    int    `json:"max_results"    validate:"omitempty,min=1,max=20"`
	Activate      bool   `json:"activate"`
	TestExecution bool   `json:"test_execution"`
}

// GenerateAndPublishResponse nests both stage outcomes.
type GenerateAndPublishResponse struct {
	Generation *pipeline.GenerateResponse `json:"generation"`
	Upload     *n8n.UploadResult          `json:"upload,omitempty"`
}

// HealthResponse reports per-component availability.
type HealthResponse struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components"`
}

// StatsResponse aggregates component statistics.
type StatsResponse struct {
	CatalogNodes int             `json:"catalog_nodes"`
	Vector       *vectorStats    `json:"vector,omitempty"`
	Uploads      n8n.UploadStats `json:"uploads"`
}

type vectorStats struct {
	Points int    `json:"points"`
	Status string `json:"status"`
}
