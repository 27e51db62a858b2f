package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ugnislab/flowgen/pkg/models"
)

var errMissingName = errors.New("definition has no name")

// MemoryCatalog keeps node definitions in memory, keyed by type. It is safe
// for concurrent use.
type MemoryCatalog struct {
	mu   sync.RWMutex
	defs map[string]models.NodeDefinition
}

// NewMemoryCatalog returns an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{defs: make(map[string]models.NodeDefinition)}
}

// NewSeededCatalog returns an in-memory catalog preloaded with the built-in
// definitions.
func NewSeededCatalog() *MemoryCatalog {
	c := NewMemoryCatalog()
	for _, def := range DefaultDefinitions() {
		c.defs[def.Type] = def
	}
	return c
}

func (c *MemoryCatalog) Upsert(_ context.Context, def models.NodeDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs[def.Type] = def
	return nil
}

func (c *MemoryCatalog) Get(_ context.Context, nodeType string) (*models.NodeDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[nodeType]
	if !ok {
		return nil, ErrNodeTypeNotFound
	}
	return &def, nil
}

func (c *MemoryCatalog) List(_ context.Context, limit int) ([]models.NodeDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.sorted()
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *MemoryCatalog) Search(_ context.Context, text string, limit int) ([]models.NodeDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(text))
	var out []models.NodeDefinition
	for _, def := range c.sorted() {
		if needle != "" && !matches(def, needle) {
			continue
		}
		out = append(out, def)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (c *MemoryCatalog) Len(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs), nil
}

func (c *MemoryCatalog) sorted() []models.NodeDefinition {
	out := make([]models.NodeDefinition, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

func matches(def models.NodeDefinition, needle string) bool {
	for _, field := range []string{def.Type, def.Name, def.DisplayName, def.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// nodeFile is the on-disk shape of an exported n8n node description. Only
// the fields the catalog cares about are decoded.
type nodeFile struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Group       []string `json:"group"`
	Version     any      `json:"version"`
	Properties  []struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Required    bool   `json:"required"`
		Default     any    `json:"default"`
		Options     []struct {
			Value any `json:"value"`
		} `json:"options"`
	} `json:"properties"`
}

// LoadDir loads every *.json definition file under dir into w. Files that
// cannot be read or decoded are skipped with a warning so one bad export
// does not block startup.
func LoadDir(ctx context.Context, dir string, w Writer, logger *slog.Logger) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		def, err := loadFile(path)
		if err != nil {
			logger.Warn("skipping node definition", "path", path, "error", err)
			continue
		}
		if err := w.Upsert(ctx, def); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

func loadFile(path string) (models.NodeDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.NodeDefinition{}, err
	}

	var file nodeFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return models.NodeDefinition{}, err
	}
	if file.Name == "" {
		return models.NodeDefinition{}, errMissingName
	}

	def := models.NodeDefinition{
		Type:        qualify(file.Name),
		Name:        file.Name,
		DisplayName: file.DisplayName,
		Description: file.Description,
	}
	if len(file.Group) > 0 {
		def.Category = file.Group[0]
	}
	switch v := file.Version.(type) {
	case float64:
		def.Version = strconv.Itoa(int(v))
	case string:
		def.Version = v
	case []any:
		// Multi-version nodes list every revision; keep the newest.
		if len(v) > 0 {
			if f, ok := v[len(v)-1].(float64); ok {
				def.Version = strconv.Itoa(int(f))
			}
		}
	}
	for _, prop := range file.Properties {
		spec := models.ParamSpec{
			Name:        prop.Name,
			Type:        prop.Type,
			Description: firstNonEmpty(prop.Description, prop.DisplayName),
			Required:    prop.Required,
			Default:     prop.Default,
		}
		for _, opt := range prop.Options {
			if opt.Value != nil {
				spec.Options = append(spec.Options, opt.Value)
			}
		}
		def.Parameters = append(def.Parameters, spec)
	}
	return def, nil
}

func qualify(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return "n8n-nodes-base." + name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
