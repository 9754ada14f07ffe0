package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/retry"
)

func noRetries() *retry.Config {
	return &retry.Config{MaxRetries: 0, InitialDelay: time.Millisecond, Multiplier: 2.0}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "images.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunDownloadsManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	manifest := writeManifest(t,
		"url,filename\n"+
			server.URL+"/a.jpg,custom.jpg\n"+
			server.URL+"/b.png,\n"+
			",\n"+
			server.URL+"/missing.jpg,broken.jpg\n")
	outDir := filepath.Join(t.TempDir(), "img")

	d := NewDownloader(server.Client(), noRetries(), zap.NewNop())
	summary, err := d.Run(context.Background(), manifest, outDir)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 4, Downloaded: 2, Skipped: 1, Failed: 1}, summary)

	data, err := os.ReadFile(filepath.Join(outDir, "custom.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	_, err = os.Stat(filepath.Join(outDir, "b.png"))
	assert.NoError(t, err)
}

func TestRunAcceptsImageURLColumn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	manifest := writeManifest(t, "image_url\n"+server.URL+"/tree.png\n")
	outDir := t.TempDir()

	d := NewDownloader(server.Client(), noRetries(), zap.NewNop())
	summary, err := d.Run(context.Background(), manifest, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Downloaded)
	_, err = os.Stat(filepath.Join(outDir, "tree.png"))
	assert.NoError(t, err)
}

func TestRunSkipsExistingFiles(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("fresh"))
	}))
	defer server.Close()

	manifest := writeManifest(t, "url,filename\n"+server.URL+"/a.jpg,a.jpg\n")
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "a.jpg"), []byte("cached"), 0o644))

	d := NewDownloader(server.Client(), noRetries(), zap.NewNop())
	summary, err := d.Run(context.Background(), manifest, outDir)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 1, Skipped: 1}, summary)
	assert.Zero(t, requests)

	data, err := os.ReadFile(filepath.Join(outDir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))
}

func TestRunFailsWithoutURLColumn(t *testing.T) {
	manifest := writeManifest(t, "path,filename\n/a.jpg,a.jpg\n")

	d := NewDownloader(nil, noRetries(), zap.NewNop())
	_, err := d.Run(context.Background(), manifest, t.TempDir())
	assert.Error(t, err)
}

func TestRunFailsOnMissingManifest(t *testing.T) {
	d := NewDownloader(nil, noRetries(), zap.NewNop())
	_, err := d.Run(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), t.TempDir())
	assert.Error(t, err)
}

func TestFilenameFromURL(t *testing.T) {
	cases := map[string]string{
		"https://example.com/photos/tree.jpg":       "tree.jpg",
		"https://example.com/photos/tree.jpg?w=400": "tree.jpg",
		"https://example.com/photos/tree":           "tree.jpg",
	}
	for input, want := range cases {
		assert.Equal(t, want, filenameFromURL(input), input)
	}
}
