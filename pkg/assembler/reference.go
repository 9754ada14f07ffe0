package assembler

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/extract"
)

// Reference table filenames written alongside the dashboard store.
const (
	ProducerSummaryFile = "producer_summary.csv"
	ImagesFile          = "images.csv"
	MessagesFile        = "messages.csv"
)

// WriteReferenceTables persists the intermediate extraction views
// (per-producer summary, image inventory, raw messages) next to the
// dashboard tables. The dashboard never reads these; they exist for
// offline inspection of an assembly run.
func WriteReferenceTables(dir string, data extract.RawData, summaries []ProducerSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeProducerSummary(filepath.Join(dir, ProducerSummaryFile), summaries); err != nil {
		return err
	}
	if err := writeImages(filepath.Join(dir, ImagesFile), data, summaries); err != nil {
		return err
	}
	return writeMessages(filepath.Join(dir, MessagesFile), data, summaries)
}

func writeProducerSummary(path string, summaries []ProducerSummary) error {
	rows := [][]string{{"producer_id", "total_images", "total_messages", "last_active"}}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.ExternalID,
			strconv.Itoa(s.TotalImages),
			strconv.Itoa(s.TotalMessages),
			s.LastActive,
		})
	}
	return writeCSV(path, rows)
}

func writeImages(path string, data extract.RawData, summaries []ProducerSummary) error {
	// Metadata fields differ per image; the header carries the sorted
	// union as meta_<field> columns.
	metaSet := make(map[string]struct{})
	for _, s := range summaries {
		for _, img := range data[s.ExternalID].TreeImages {
			for field := range img.Metadata {
				metaSet[field] = struct{}{}
			}
		}
	}
	metaFields := make([]string, 0, len(metaSet))
	for field := range metaSet {
		metaFields = append(metaFields, field)
	}
	sort.Strings(metaFields)

	header := []string{"producer_id", "filename", "created_date", "s3_path"}
	for _, field := range metaFields {
		header = append(header, "meta_"+field)
	}

	rows := [][]string{header}
	for _, s := range summaries {
		images := data[s.ExternalID].TreeImages
		keys := make([]string, 0, len(images))
		for key := range images {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			img := images[key]
			row := []string{s.ExternalID, img.Filename, img.CreatedDate, img.StorePath}
			for _, field := range metaFields {
				row = append(row, img.Metadata[field])
			}
			rows = append(rows, row)
		}
	}
	return writeCSV(path, rows)
}

func writeMessages(path string, data extract.RawData, summaries []ProducerSummary) error {
	rows := [][]string{{"producer_id", "query_time", "query", "response", "user_id"}}
	for _, s := range summaries {
		for _, msg := range data[s.ExternalID].ChatHistory {
			rows = append(rows, []string{s.ExternalID, msg.QueryTime, msg.Query, msg.Response, msg.UserID})
		}
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
