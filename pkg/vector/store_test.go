package vector

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStore(srv.URL, slog.New(slog.DiscardHandler))
}

func TestSearchAppliesCategoryFilter(t *testing.T) {
	var gotBody map[string]any
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections/workflow_examples/points/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{"id": "wf-1", "score": 0.91, "payload": map[string]any{
					"name": "Telegram bot", "category": "messaging",
				}},
			},
		})
	})

	hits, err := store.Search(t.Context(), []float32{0.1, 0.2}, "messaging", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "wf-1", hits[0].ID)
	assert.InDelta(t, 0.91, hits[0].Score, 1e-9)
	assert.Equal(t, "Telegram bot", hits[0].Payload.Name)

	filter, ok := gotBody["filter"].(map[string]any)
	require.True(t, ok, "category search must send a filter")
	must := filter["must"].([]any)[0].(map[string]any)
	assert.Equal(t, "category", must["key"])
}

func TestSearchWithoutCategoryOmitsFilter(t *testing.T) {
	var gotBody map[string]any
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"result": []any{}})
	})

	hits, err := store.Search(t.Context(), []float32{0.1}, "", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	_, hasFilter := gotBody["filter"]
	assert.False(t, hasFilter)
}

func TestSearchNumericIDsAreStringified(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{{"id": 42, "score": 0.5}},
		})
	})

	hits, err := store.Search(t.Context(), []float32{0.1}, "", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "42", hits[0].ID)
}

func TestEnsureCollectionTreatsConflictAsSuccess(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusConflict} {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			w.WriteHeader(status)
		})
		assert.NoError(t, store.EnsureCollection(t.Context()))
	}
}

func TestUpsertSendsWaitFlag(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		var body struct {
			Points []struct {
				ID string `json:"id"`
			} `json:"points"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Points, 2)
		w.WriteHeader(http.StatusOK)
	})

	err := store.Upsert(t.Context(), []Point{
		{ID: "a", Vector: []float32{0.1}},
		{ID: "b", Vector: []float32{0.2}},
	})
	require.NoError(t, err)
}

func TestAvailable(t *testing.T) {
	up := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, up.Available(t.Context()))

	down := NewStore("http://127.0.0.1:0", slog.New(slog.DiscardHandler))
	assert.False(t, down.Available(t.Context()))
}

func TestStats(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections/workflow_examples", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"points_count": 7, "status": "green"},
		})
	})

	stats, err := store.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.PointsCount)
	assert.Equal(t, "green", stats.Status)
}
