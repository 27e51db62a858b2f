package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnislab/flowgen/pkg/models"
)

func TestMemoryCatalogGet(t *testing.T) {
	c := NewSeededCatalog()

	def, err := c.Get(t.Context(), "n8n-nodes-base.webhook")
	require.NoError(t, err)
	assert.Equal(t, "Webhook", def.DisplayName)
	assert.Equal(t, "api", def.Category)

	_, err = c.Get(t.Context(), "n8n-nodes-base.unknown")
	assert.True(t, IsNodeTypeNotFound(err))
}

func TestMemoryCatalogListIsSortedAndLimited(t *testing.T) {
	c := NewSeededCatalog()

	all, err := c.List(t.Context(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Type, all[i].Type)
	}

	two, err := c.List(t.Context(), 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
	assert.Equal(t, all[0].Type, two[0].Type)
}

func TestMemoryCatalogSearch(t *testing.T) {
	c := NewSeededCatalog()

	hits, err := c.Search(t.Context(), "telegram", 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "n8n-nodes-base.telegram", hits[0].Type)
	assert.Equal(t, "n8n-nodes-base.telegramTrigger", hits[1].Type)

	none, err := c.Search(t.Context(), "nosuchnode", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryCatalogUpsertReplaces(t *testing.T) {
	c := NewMemoryCatalog()

	require.NoError(t, c.Upsert(t.Context(), models.NodeDefinition{Type: "x", Name: "x", DisplayName: "old"}))
	require.NoError(t, c.Upsert(t.Context(), models.NodeDefinition{Type: "x", Name: "x", DisplayName: "new"}))

	n, err := c.Len(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	def, err := c.Get(t.Context(), "x")
	require.NoError(t, err)
	assert.Equal(t, "new", def.DisplayName)
}

func TestLoadDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "slack.json", `{
		"name": "slack",
		"displayName": "Slack",
		"description": "Sends messages to Slack",
		"group": ["messaging"],
		"version": 2,
		"properties": [
			{"name": "channel", "type": "string", "required": true},
			{"name": "operation", "type": "options", "default": "post",
			 "options": [{"value": "post"}, {"value": "update"}]}
		]
	}`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "nameless.json", `{"displayName": "No Name"}`)
	writeFile(t, dir, "list.json", `[{"name": "ignored"}]`)
	writeFile(t, dir, "readme.txt", `not a definition`)

	c := NewMemoryCatalog()
	loaded, err := LoadDir(t.Context(), dir, c, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	def, err := c.Get(t.Context(), "n8n-nodes-base.slack")
	require.NoError(t, err)
	assert.Equal(t, "Slack", def.DisplayName)
	assert.Equal(t, "messaging", def.Category)
	assert.Equal(t, "2", def.Version)
	require.Len(t, def.Parameters, 2)
	assert.True(t, def.Parameters[0].Required)
	assert.Equal(t, []any{"post", "update"}, def.Parameters[1].Options)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	c := NewMemoryCatalog()
	_, err := LoadDir(t.Context(), filepath.Join(t.TempDir(), "missing"), c, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
