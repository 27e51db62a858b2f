package n8n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ugnislab/flowgen/pkg/models"
)

// PublishOptions controls what happens after a workflow is created.
type PublishOptions struct {
	Activate bool
	Test     bool
}

// UploadStats counts publish outcomes since startup.
type UploadStats struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Activated int `json:"activated"`
	Failed    int `json:"failed"`
}

// Manager layers the publish workflow (create, optionally activate,
// optionally test) over the raw client and keeps upload statistics.
type Manager struct {
	client *Client
	logger *slog.Logger

	mu    sync.Mutex
	stats UploadStats
}

func NewManager(client *Client, logger *slog.Logger) *Manager {
	return &Manager{client: client, logger: logger}
}

// Publish uploads doc and applies opts. The first failing step determines
// the returned result; a failed activation still reports the created
// workflow id.
func (m *Manager) Publish(ctx context.Context, doc *models.WorkflowDocument, opts PublishOptions) UploadResult {
	m.count(func(s *UploadStats) { s.Attempted++ })

	created := m.client.Create(ctx, doc)
	if !created.Success {
		m.count(func(s *UploadStats) { s.Failed++ })
		m.logger.Warn("workflow upload failed", "name", doc.Name, "message", created.Message)
		return created
	}
	m.count(func(s *UploadStats) { s.Succeeded++ })
	m.logger.Info("workflow uploaded", "name", doc.Name, "id", created.WorkflowID)

	result := created
	if opts.Activate {
		activated := m.client.Activate(ctx, created.WorkflowID)
		if !activated.Success {
			activated.WorkflowID = created.WorkflowID
			return activated
		}
		m.count(func(s *UploadStats) { s.Activated++ })
		result = activated
	}

	if opts.Test {
		executed := m.client.Execute(ctx, created.WorkflowID)
		if !executed.Success {
			executed.WorkflowID = created.WorkflowID
			return executed
		}
		result.Message = "workflow uploaded and test execution started"
	}
	return result
}

// Stats returns a snapshot of the upload counters.
func (m *Manager) Stats() UploadStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Manager) count(update func(*UploadStats)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	update(&m.stats)
}
