// Package n8n talks to an n8n instance over its REST API so generated
// workflows can be published and executed.
package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ugnislab/flowgen/pkg/models"
)

const (
	apiKeyHeader   = "X-N8N-API-KEY"
	requestTimeout = 30 * time.Second
)

// UploadResult is the domain-level outcome of any runtime call. Transport
// and status-code details never escape past it.
type UploadResult struct {
	Success    bool   `json:"success"`
	WorkflowID string `json:"workflow_id,omitempty"`
	Message    string `json:"message"`
	Active     bool   `json:"active,omitempty"`
}

// WorkflowInfo is a summary row from the runtime's workflow list.
type WorkflowInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Client is the low-level n8n REST client.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// Available reports whether the runtime answers authenticated requests.
func (c *Client) Available(ctx context.Context) bool {
	status, _, err := c.do(ctx, http.MethodGet, "/api/v1/workflows", nil)
	return err == nil && status == http.StatusOK
}

// Create uploads a prepared workflow document.
func (c *Client) Create(ctx context.Context, doc *models.WorkflowDocument) UploadResult {
	payload := PreparePayload(doc)
	status, body, err := c.do(ctx, http.MethodPost, "/api/v1/workflows", payload)
	if err != nil {
		return connectionFailure(err)
	}

	result := bandResult(status, "workflow created")
	if result.Success {
		var created struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &created); err == nil {
			result.WorkflowID = created.ID
		}
	}
	return result
}

// Get fetches a single workflow summary from the runtime.
func (c *Client) Get(ctx context.Context, id string) (*WorkflowInfo, UploadResult) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/v1/workflows/"+id, nil)
	if err != nil {
		return nil, connectionFailure(err)
	}

	result := bandResult(status, "workflow fetched")
	result.WorkflowID = id
	if !result.Success {
		return nil, result
	}

	var info WorkflowInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, UploadResult{Message: "runtime answered with an unreadable workflow"}
	}
	return &info, result
}

// Update replaces an existing workflow with a freshly prepared document.
func (c *Client) Update(ctx context.Context, id string, doc *models.WorkflowDocument) UploadResult {
	payload := PreparePayload(doc)
	status, _, err := c.do(ctx, http.MethodPut, "/api/v1/workflows/"+id, payload)
	if err != nil {
		return connectionFailure(err)
	}

	result := bandResult(status, "workflow updated")
	result.WorkflowID = id
	return result
}

// Activate switches a workflow on.
func (c *Client) Activate(ctx context.Context, id string) UploadResult {
	status, _, err := c.do(ctx, http.MethodPost, "/api/v1/workflows/"+id+"/activate", nil)
	if err != nil {
		return connectionFailure(err)
	}
	result := bandResult(status, "workflow activated")
	result.WorkflowID = id
	result.Active = result.Success
	return result
}

// Deactivate switches a workflow off.
func (c *Client) Deactivate(ctx context.Context, id string) UploadResult {
	status, _, err := c.do(ctx, http.MethodPost, "/api/v1/workflows/"+id+"/deactivate", nil)
	if err != nil {
		return connectionFailure(err)
	}
	result := bandResult(status, "workflow deactivated")
	result.WorkflowID = id
	return result
}

// Delete removes a workflow from the runtime.
func (c *Client) Delete(ctx context.Context, id string) UploadResult {
	status, _, err := c.do(ctx, http.MethodDelete, "/api/v1/workflows/"+id, nil)
	if err != nil {
		return connectionFailure(err)
	}
	result := bandResult(status, "workflow deleted")
	result.WorkflowID = id
	return result
}

// Execute triggers a test run of a workflow.
func (c *Client) Execute(ctx context.Context, id string) UploadResult {
	status, _, err := c.do(ctx, http.MethodPost, "/api/v1/workflows/"+id+"/execute", nil)
	if err != nil {
		return connectionFailure(err)
	}
	result := bandResult(status, "execution started")
	result.WorkflowID = id
	return result
}

// List returns the workflows known to the runtime.
func (c *Client) List(ctx context.Context) ([]WorkflowInfo, UploadResult) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/v1/workflows", nil)
	if err != nil {
		return nil, connectionFailure(err)
	}
	result := bandResult(status, "workflows listed")
	if !result.Success {
		return nil, result
	}

	var parsed struct {
		Data []WorkflowInfo `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, UploadResult{Message: "runtime answered with an unreadable workflow list"}
	}
	return parsed.Data, result
}

// bandResult maps a status code onto a domain result. The bands come from
// how n8n actually answers rather than from general HTTP semantics.
func bandResult(status int, okMessage string) UploadResult {
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		return UploadResult{Success: true, Message: okMessage}
	case status == http.StatusBadRequest:
		return UploadResult{Message: "runtime rejected the workflow format"}
	case status == http.StatusUnauthorized:
		return UploadResult{Message: "runtime rejected the API key"}
	case status == http.StatusNotFound:
		return UploadResult{Message: "runtime endpoint or workflow not found"}
	default:
		return UploadResult{Message: fmt.Sprintf("runtime answered with status %d", status)}
	}
}

func connectionFailure(err error) UploadResult {
	return UploadResult{Message: fmt.Sprintf("runtime unreachable: %v", err)}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// PreparePayload fills the fields n8n requires but generation leaves out:
// node ids, grid positions, the active flag and the settings blocks. The
// input document is not mutated.
func PreparePayload(doc *models.WorkflowDocument) map[string]any {
	nodes := make([]map[string]any, 0, len(doc.Nodes))
	for i, node := range doc.Nodes {
		if node == nil {
			continue
		}
		id := node.ID
		if id == "" {
			id = uuid.NewString()
		}
		position := node.Position
		if len(position) != 2 {
			position = []int{100 + i*200, 100}
		}
		params := node.Parameters
		if params == nil {
			params = map[string]any{}
		}
		nodes = append(nodes, map[string]any{
			"id":         id,
			"name":       node.Name,
			"type":       node.Type,
			"parameters": params,
			"position":   position,
		})
	}

	settings := doc.Settings
	if settings == nil {
		settings = map[string]any{"executionOrder": "v1"}
	}
	staticData := doc.StaticData
	if staticData == nil {
		staticData = map[string]any{}
	}
	connections := doc.Connections
	if connections == nil {
		connections = map[string]models.ConnectionSpec{}
	}

	return map[string]any{
		"name":        doc.Name,
		"nodes":       nodes,
		"connections": connections,
		"active":      doc.Active,
		"settings":    settings,
		"staticData":  staticData,
	}
}
