package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `[
	{"id": 1, "title": "Spinach Omelette", "image": "omelette.jpg", "usedIngredientCount": 2, "missedIngredientCount": 1},
	{"id": 2, "title": "Cheese Toast", "image": "toast.jpg", "usedIngredientCount": 1, "missedIngredientCount": 0}
]`

func newTestServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "eggs,spinach", r.URL.Query().Get("ingredients"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchesAndCaches(t *testing.T) {
	var calls int
	srv := newTestServer(t, &calls)
	client := NewClient(srv.URL, "test-key", t.TempDir())

	found, err := client.FindByIngredients(context.Background(), "eggs,spinach")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Spinach Omelette", found[0].Title)
	assert.Equal(t, 2, found[0].UsedIngredientCount)

	// Second lookup with the same key is served from disk.
	found, err = client.FindByIngredients(context.Background(), "eggs,spinach")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, 1, calls)
}

func TestClient_CorruptCacheIsInvalidatedAndRefetched(t *testing.T) {
	var calls int
	srv := newTestServer(t, &calls)
	cacheDir := t.TempDir()
	client := NewClient(srv.URL, "test-key", cacheDir)

	// Poison the cache entry for this key.
	path := client.cachePath("eggs,spinach")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

	found, err := client.FindByIngredients(context.Background(), "eggs,spinach")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, 1, calls, "corrupt cache must trigger a refetch")

	// The refetched body replaced the poisoned file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, sampleResponse, string(data))
}

func TestClient_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired) // quota exhausted
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "test-key", t.TempDir())

	_, err := client.FindByIngredients(context.Background(), "eggs,spinach")
	assert.Error(t, err)
}

func TestClient_CachePathIsFilesystemSafe(t *testing.T) {
	client := NewClient("http://example.invalid", "k", "/tmp/cache")

	path := client.cachePath("eggs,chicken breast,crème fraîche")

	assert.Equal(t, "/tmp/cache", filepath.Dir(path))
	base := filepath.Base(path)
	assert.NotContains(t, base, " ")
	assert.NotContains(t, base, "/")
}
