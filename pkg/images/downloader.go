// Package images bulk-downloads the images listed in a CSV manifest.
// It is a standalone utility; nothing in the record pipeline depends
// on it.
package images

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/retry"
)

// filenameColumns are the manifest columns consulted, in order, for an
// explicit output filename.
var filenameColumns = []string{"filename", "name", "file", "image_name"}

// Summary reports the outcome of one download run.
type Summary struct {
	Total      int
	Downloaded int
	Skipped    int
	Failed     int
}

// Downloader fetches every image named in a CSV manifest into a local
// directory.
type Downloader struct {
	client  *http.Client
	retries *retry.Config
	logger  *zap.Logger
}

// NewDownloader creates a Downloader. A nil client gets a 30s-timeout
// default; a nil retry config gets retry.DefaultConfig.
func NewDownloader(client *http.Client, retries *retry.Config, logger *zap.Logger) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Downloader{
		client:  client,
		retries: retries,
		logger:  logger.Named("images"),
	}
}

// Run reads the manifest at manifestPath and downloads each listed
// image into outDir. The manifest must have a "url" or "image_url"
// column; rows with an empty URL or an already-downloaded file are
// skipped, and per-row download
// failures are counted rather than aborting the run.
func (d *Downloader) Run(ctx context.Context, manifestPath, outDir string) (Summary, error) {
	var summary Summary

	f, err := os.Open(manifestPath)
	if err != nil {
		return summary, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return summary, fmt.Errorf("reading manifest header: %w", err)
	}

	urlCol := indexOf(header, "url")
	if urlCol < 0 {
		urlCol = indexOf(header, "image_url")
	}
	if urlCol < 0 {
		return summary, fmt.Errorf("manifest must contain a %q or %q column", "url", "image_url")
	}

	nameCol := -1
	for _, candidate := range filenameColumns {
		if i := indexOf(header, candidate); i >= 0 {
			nameCol = i
			break
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("reading manifest row: %w", err)
		}

		summary.Total++
		imageURL := strings.TrimSpace(row[urlCol])
		if imageURL == "" {
			d.logger.Debug("skipping row with empty URL", zap.Int("row", summary.Total))
			summary.Skipped++
			continue
		}

		filename := ""
		if nameCol >= 0 && nameCol < len(row) {
			filename = strings.TrimSpace(row[nameCol])
		}
		if filename == "" {
			filename = filenameFromURL(imageURL)
		}

		dest := filepath.Join(outDir, filename)
		if _, err := os.Stat(dest); err == nil {
			d.logger.Debug("skipping existing file", zap.String("filename", filename))
			summary.Skipped++
			continue
		}
		if err := d.download(ctx, imageURL, dest); err != nil {
			d.logger.Warn("download failed",
				zap.String("url", imageURL),
				zap.String("filename", filename),
				zap.Error(err))
			summary.Failed++
			continue
		}
		d.logger.Debug("downloaded image",
			zap.String("url", imageURL),
			zap.String("filename", filename))
		summary.Downloaded++
	}

	d.logger.Info("image download complete",
		zap.Int("total", summary.Total),
		zap.Int("downloaded", summary.Downloaded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.String("dir", outDir))
	return summary, nil
}

func (d *Downloader) download(ctx context.Context, imageURL, dest string) error {
	return retry.Do(ctx, d.retries, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
		if err != nil {
			return err
		}

		resp, err := d.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		out, err := os.Create(dest)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, resp.Body); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	})
}

// filenameFromURL derives an output filename from the URL path,
// dropping the query string and defaulting the extension to .jpg.
func filenameFromURL(imageURL string) string {
	trimmed := imageURL
	if u, err := url.Parse(imageURL); err == nil {
		trimmed = u.Path
	} else if i := strings.Index(imageURL, "?"); i >= 0 {
		trimmed = imageURL[:i]
	}

	filename := path.Base(trimmed)
	if filename == "." || filename == "/" {
		filename = "image"
	}
	if !strings.Contains(filename, ".") {
		filename += ".jpg"
	}
	return filename
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
