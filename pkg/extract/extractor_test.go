package extract

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListProducers(t *testing.T) {
	store := NewMemoryStore()
	store.Put("producer_b/chat_history/2023.json", []byte("[]"))
	store.Put("producer_a/tree1.jpg", []byte("img"))
	store.Put("loose_file.txt", []byte("not in a folder"))

	e := New(store, zap.NewNop())
	producers, err := e.ListProducers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"producer_a", "producer_b"}, producers)
}

func TestExtractChatHistoryShapes(t *testing.T) {
	store := NewMemoryStore()
	store.Put("p1/chat_history/batch.json", []byte(`[
		{"query": "How do I treat black pod?", "response": "Remove infected pods.", "query_time": "2023-06-01T10:00:00Z"},
		{"query": "Thanks!", "response": "", "query_time": "2023-06-01T10:05:00Z"}
	]`))
	store.Put("p1/chat_history/single.json", []byte(`{"query": "When to harvest?", "response": "After the pods turn yellow."}`))
	store.Put("p1/chat_history/broken.json", []byte(`{"query": `))
	store.Put("p1/chat_history/notes.txt", []byte("ignored, not JSON"))

	e := New(store, zap.NewNop())
	history := e.ExtractChatHistory(context.Background(), "p1")

	require.Len(t, history, 3)
	assert.Equal(t, "How do I treat black pod?", history[0].Query)
}

func TestExtractChatHistorySortsWhenAnyTimestampPresent(t *testing.T) {
	store := NewMemoryStore()
	store.Put("p1/chat_history/a.json", []byte(`[
		{"query": "No timestamp here", "response": "ok"},
		{"query": "Second by time", "response": "ok", "timestamp": "2023-06-02T08:00:00Z"},
		{"query": "First by time", "response": "ok", "timestamp": "2023-06-01T08:00:00Z"}
	]`))

	e := New(store, zap.NewNop())
	history := e.ExtractChatHistory(context.Background(), "p1")

	require.Len(t, history, 3)
	assert.Equal(t, "No timestamp here", history[0].Query)
	assert.Equal(t, "First by time", history[1].Query)
	assert.Equal(t, "Second by time", history[2].Query)
}

func TestExtractTreeImages(t *testing.T) {
	store := NewMemoryStore()
	modified := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	store.PutWithMetadata("p1/tree_1.JPG", []byte("img"),
		map[string]string{"leaf_condition": "Yellowing"}, modified)
	store.Put("p1/chat_history/log.json", []byte("[]"))
	store.Put("p1/notes.txt", []byte("not an image"))

	e := New(store, zap.NewNop())
	images := e.ExtractTreeImages(context.Background(), "p1")

	require.Len(t, images, 1)
	img := images["p1/tree_1.JPG"]
	assert.Equal(t, "tree_1.JPG", img.Filename)
	assert.Equal(t, "2023-06-15T12:00:00Z", img.CreatedDate)
	assert.Equal(t, "Yellowing", img.Metadata["leaf_condition"])
	assert.Equal(t, "mem://p1/tree_1.JPG", img.StorePath)
}

func TestExtractAllAndRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	store.Put("p1/chat_history/log.json", []byte(`[{"query": "Hi", "response": "Hello"}]`))
	store.PutWithMetadata("p1/tree.jpg", []byte("img"), nil, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	store.Put("p2/chat_history/log.json", []byte(`[]`))

	e := New(store, zap.NewNop())
	data, err := e.ExtractAll(context.Background())
	require.NoError(t, err)

	require.Len(t, data, 2)
	assert.Equal(t, 1, data["p1"].TotalChatMessages)
	assert.Equal(t, 1, data["p1"].TotalImages)
	assert.Equal(t, 0, data["p2"].TotalChatMessages)

	path := filepath.Join(t.TempDir(), "producer_data", "producer_data.json")
	require.NoError(t, SaveJSON(data, path))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}
