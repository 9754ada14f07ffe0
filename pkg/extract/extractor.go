package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// Extractor walks producer folders in the object store and builds the
// raw nested data document. Per-producer failures degrade to empty
// collections so one broken folder cannot sink the whole run.
type Extractor struct {
	store  ObjectStore
	logger *zap.Logger
}

// New creates an Extractor. Each ExtractAll call gets its own run id in
// the logs.
func New(store ObjectStore, logger *zap.Logger) *Extractor {
	return &Extractor{store: store, logger: logger.Named("extract")}
}

// ListProducers returns the unique top-level folder names in the store,
// sorted. Objects at the bucket root do not count as producers.
func (e *Extractor) ListProducers(ctx context.Context) ([]string, error) {
	objects, err := e.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list producers: %w", err)
	}

	seen := make(map[string]bool)
	for _, obj := range objects {
		parts := strings.SplitN(obj.Key, "/", 2)
		if len(parts) == 2 && parts[0] != "" {
			seen[parts[0]] = true
		}
	}

	producers := make([]string, 0, len(seen))
	for name := range seen {
		producers = append(producers, name)
	}
	sort.Strings(producers)
	return producers, nil
}

// ExtractChatHistory reads every JSON file under the producer's
// chat_history folder. Files holding either a single message object or
// a list of them are accepted; malformed files are logged and skipped.
func (e *Extractor) ExtractChatHistory(ctx context.Context, producer string) []RawMessage {
	var history []RawMessage

	prefix := producer + "/chat_history/"
	objects, err := e.store.List(ctx, prefix)
	if err != nil {
		e.logger.Error("listing chat history failed",
			zap.String("producer", producer), zap.Error(err))
		return nil
	}

	for _, obj := range objects {
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		content, err := e.store.Get(ctx, obj.Key)
		if err != nil {
			e.logger.Error("fetching chat file failed",
				zap.String("key", obj.Key), zap.Error(err))
			continue
		}

		var batch []RawMessage
		if err := json.Unmarshal(content, &batch); err == nil {
			history = append(history, batch...)
			continue
		}
		var single RawMessage
		if err := json.Unmarshal(content, &single); err == nil {
			history = append(history, single)
			continue
		}
		e.logger.Error("malformed chat file skipped", zap.String("key", obj.Key))
	}

	// Order by timestamp when any message carries one. Untimestamped
	// messages sort first, keeping their relative order.
	for _, msg := range history {
		if msg.Timestamp != "" {
			sort.SliceStable(history, func(i, j int) bool {
				return history[i].Timestamp < history[j].Timestamp
			})
			break
		}
	}

	return history
}

// ExtractTreeImages finds image objects anywhere under the producer's
// folder and records their metadata and modification dates.
func (e *Extractor) ExtractTreeImages(ctx context.Context, producer string) map[string]RawImage {
	images := make(map[string]RawImage)

	objects, err := e.store.List(ctx, producer+"/")
	if err != nil {
		e.logger.Error("listing images failed",
			zap.String("producer", producer), zap.Error(err))
		return images
	}

	for _, obj := range objects {
		if !hasImageExtension(obj.Key) {
			continue
		}
		metadata, err := e.store.Metadata(ctx, obj.Key)
		if err != nil {
			e.logger.Error("fetching image metadata failed",
				zap.String("key", obj.Key), zap.Error(err))
			metadata = nil
		}

		created := ""
		if !obj.LastModified.IsZero() {
			created = obj.LastModified.Format(time.RFC3339)
		}

		images[obj.Key] = RawImage{
			Filename:    path.Base(obj.Key),
			CreatedDate: created,
			Metadata:    metadata,
			StorePath:   e.store.Path(obj.Key),
		}
	}
	return images
}

// ExtractAll extracts chat history and image metadata for every
// producer folder in the store.
func (e *Extractor) ExtractAll(ctx context.Context) (RawData, error) {
	runLogger := e.logger.With(zap.String("run_id", uuid.NewString()))

	producers, err := e.ListProducers(ctx)
	if err != nil {
		return nil, err
	}
	runLogger.Info("extraction started", zap.Int("producers", len(producers)))

	data := make(RawData, len(producers))
	for _, producer := range producers {
		chat := e.ExtractChatHistory(ctx, producer)
		images := e.ExtractTreeImages(ctx, producer)

		data[producer] = RawProducer{
			ProducerID:        producer,
			ChatHistory:       chat,
			TreeImages:        images,
			TotalImages:       len(images),
			TotalChatMessages: len(chat),
		}
		runLogger.Info("producer extracted",
			zap.String("producer", producer),
			zap.Int("messages", len(chat)),
			zap.Int("images", len(images)))
	}

	runLogger.Info("extraction completed", zap.Int("producers", len(data)))
	return data, nil
}

// SaveJSON writes the raw data document to path, creating parent
// directories as needed.
func SaveJSON(data RawData, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("save raw data: %w", err)
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("save raw data: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("save raw data: %w", err)
	}
	return nil
}

// LoadJSON reads a raw data document written by SaveJSON.
func LoadJSON(inputPath string) (RawData, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load raw data: %w", err)
	}
	var data RawData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("load raw data: %w", err)
	}
	return data, nil
}

func hasImageExtension(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
