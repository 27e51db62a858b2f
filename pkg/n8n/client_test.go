package n8n

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnislab/flowgen/pkg/models"
)

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret", testLogger())
}

func simpleDoc() *models.WorkflowDocument {
	return &models.WorkflowDocument{
		Name: "Test",
		Nodes: []*models.Node{
			{Name: "Webhook", Type: "n8n-nodes-base.webhook"},
			{Name: "Process", Type: "n8n-nodes-base.function", ID: "fixed-id"},
		},
		Connections: map[string]models.ConnectionSpec{},
	}
}

func TestCreateSendsAPIKeyAndPayloadDefaults(t *testing.T) {
	var gotKey string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-N8N-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"id": "wf-9"})
	})

	result := client.Create(t.Context(), simpleDoc())
	require.True(t, result.Success)
	assert.Equal(t, "wf-9", result.WorkflowID)
	assert.Equal(t, "secret", gotKey)

	nodes := gotBody["nodes"].([]any)
	require.Len(t, nodes, 2)

	first := nodes[0].(map[string]any)
	assert.NotEmpty(t, first["id"])
	assert.Equal(t, []any{float64(100), float64(100)}, first["position"])

	second := nodes[1].(map[string]any)
	assert.Equal(t, "fixed-id", second["id"])
	assert.Equal(t, []any{float64(300), float64(100)}, second["position"])

	assert.Equal(t, false, gotBody["active"])
	assert.NotNil(t, gotBody["settings"])
	assert.NotNil(t, gotBody["staticData"])
}

func TestStatusBands(t *testing.T) {
	cases := []struct {
		status  int
		success bool
		message string
	}{
		{http.StatusOK, true, "workflow created"},
		{http.StatusCreated, true, "workflow created"},
		{http.StatusBadRequest, false, "runtime rejected the workflow format"},
		{http.StatusUnauthorized, false, "runtime rejected the API key"},
		{http.StatusNotFound, false, "runtime endpoint or workflow not found"},
		{http.StatusInternalServerError, false, "runtime answered with status 500"},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		result := client.Create(t.Context(), simpleDoc())
		assert.Equal(t, tc.success, result.Success, "status %d", tc.status)
		assert.Equal(t, tc.message, result.Message, "status %d", tc.status)
	}
}

func TestConnectionFailureIsDomainResult(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "secret", testLogger())
	result := client.Create(t.Context(), simpleDoc())
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "runtime unreachable")
}

func TestListWorkflows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/workflows", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "1", "name": "First", "active": true},
			},
		})
	})

	infos, result := client.List(t.Context())
	require.True(t, result.Success)
	require.Len(t, infos, 1)
	assert.Equal(t, "First", infos[0].Name)
	assert.True(t, infos[0].Active)
}

func TestGetWorkflow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/workflows/wf-1", r.URL.Path)
		json.NewEncoder(w).Encode(WorkflowInfo{ID: "wf-1", Name: "Orders", Active: true})
	})

	info, result := client.Get(t.Context(), "wf-1")
	require.True(t, result.Success)
	require.NotNil(t, info)
	assert.Equal(t, "Orders", info.Name)
	assert.True(t, info.Active)

	missing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	info, result = missing.Get(t.Context(), "wf-2")
	assert.Nil(t, info)
	assert.False(t, result.Success)
	assert.Equal(t, "runtime endpoint or workflow not found", result.Message)
}

func TestUpdateWorkflow(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	result := client.Update(t.Context(), "wf-3", simpleDoc())
	require.True(t, result.Success)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/workflows/wf-3", gotPath)
	assert.Equal(t, "wf-3", result.WorkflowID)
}

func TestManagerPublishActivateAndStats(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "wf-1"})
	})
	m := NewManager(client, testLogger())

	result := m.Publish(t.Context(), simpleDoc(), PublishOptions{Activate: true, Test: true})
	require.True(t, result.Success)
	assert.Equal(t, "wf-1", result.WorkflowID)
	assert.Equal(t, []string{
		"POST /api/v1/workflows",
		"POST /api/v1/workflows/wf-1/activate",
		"POST /api/v1/workflows/wf-1/execute",
	}, calls)

	stats := m.Stats()
	assert.Equal(t, UploadStats{Attempted: 1, Succeeded: 1, Activated: 1}, stats)
}

func TestManagerCountsFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	m := NewManager(client, testLogger())

	result := m.Publish(t.Context(), simpleDoc(), PublishOptions{})
	assert.False(t, result.Success)
	assert.Equal(t, UploadStats{Attempted: 1, Failed: 1}, m.Stats())
}

func TestPreparePayloadDoesNotMutateInput(t *testing.T) {
	doc := simpleDoc()
	PreparePayload(doc)
	assert.Empty(t, doc.Nodes[0].ID)
	assert.Nil(t, doc.Settings)
}
