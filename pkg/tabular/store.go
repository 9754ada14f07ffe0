package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
)

// Table filenames inside the store directory.
const (
	CooperativeFile = "cooperative_info.csv"
	ProducersFile   = "producers.csv"
	AggregateFile   = "aggregate.csv"
	ChatHistoryFile = "chat_history.csv"
)

// Store is the fully decoded content of the four-table CSV store. It is
// rebuilt from disk on every dashboard request; there is no caching.
type Store struct {
	Cooperative models.Cooperative
	Producers   []models.Producer
	Aggregate   models.Aggregate
	ChatThreads []models.ChatThread
}

// Load reads and decodes the four tables from dir. Any malformed cell
// fails the whole load; the dashboard has no per-field default for
// persisted data it depends on.
func Load(dir string) (*Store, error) {
	store := &Store{}

	coopRows, err := readTable(filepath.Join(dir, CooperativeFile))
	if err != nil {
		return nil, err
	}
	if len(coopRows) == 0 {
		return nil, fmt.Errorf("load store: %s has no data row", CooperativeFile)
	}
	store.Cooperative, err = DecodeCooperativeRow(coopRows[0])
	if err != nil {
		return nil, fmt.Errorf("load store: %s: %w", CooperativeFile, err)
	}

	producerRows, err := readTable(filepath.Join(dir, ProducersFile))
	if err != nil {
		return nil, err
	}
	for _, row := range producerRows {
		producer, err := DecodeProducerRow(row)
		if err != nil {
			return nil, fmt.Errorf("load store: %s: %w", ProducersFile, err)
		}
		store.Producers = append(store.Producers, producer)
	}

	aggRows, err := readTable(filepath.Join(dir, AggregateFile))
	if err != nil {
		return nil, err
	}
	if len(aggRows) > 0 {
		store.Aggregate, err = DecodeAggregateRow(aggRows[0])
		if err != nil {
			return nil, fmt.Errorf("load store: %s: %w", AggregateFile, err)
		}
	}

	chatRows, err := readTable(filepath.Join(dir, ChatHistoryFile))
	if err != nil {
		return nil, err
	}
	store.ChatThreads, err = groupChatRows(chatRows)
	if err != nil {
		return nil, fmt.Errorf("load store: %s: %w", ChatHistoryFile, err)
	}

	return store, nil
}

// Save encodes the store and writes the four tables into dir, creating
// it when needed.
func Save(dir string, store *Store) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	coopRow, err := EncodeCooperativeRow(store.Cooperative)
	if err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, CooperativeFile), CooperativeColumns, []Row{coopRow}); err != nil {
		return err
	}

	producerRows := make([]Row, 0, len(store.Producers))
	for _, p := range store.Producers {
		row, err := EncodeProducerRow(p)
		if err != nil {
			return err
		}
		producerRows = append(producerRows, row)
	}
	if err := writeTable(filepath.Join(dir, ProducersFile), ProducerColumns, producerRows); err != nil {
		return err
	}

	aggRow, err := EncodeAggregateRow(store.Aggregate)
	if err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, AggregateFile), AggregateColumns, []Row{aggRow}); err != nil {
		return err
	}

	var chatRows []Row
	for _, thread := range store.ChatThreads {
		for _, msg := range thread.Messages {
			chatRows = append(chatRows, EncodeChatRow(thread.ProducerID, msg))
		}
	}
	return writeTable(filepath.Join(dir, ChatHistoryFile), ChatColumns, chatRows)
}

// groupChatRows groups flat message rows into per-producer threads.
// Threads come out ordered by producer id; messages keep the row order
// of the source file.
func groupChatRows(rows []Row) ([]models.ChatThread, error) {
	byProducer := make(map[int][]models.ChatMessage)
	for _, row := range rows {
		id, msg, err := DecodeChatRow(row)
		if err != nil {
			return nil, err
		}
		byProducer[id] = append(byProducer[id], msg)
	}

	ids := make([]int, 0, len(byProducer))
	for id := range byProducer {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	threads := make([]models.ChatThread, 0, len(ids))
	for _, id := range ids {
		threads = append(threads, models.ChatThread{ProducerID: id, Messages: byProducer[id]})
	}
	return threads, nil
}

// readTable reads a CSV file with a header row into column-keyed rows.
func readTable(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read table %s: missing header row", filepath.Base(path))
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeTable writes rows as CSV with the given column order.
func writeTable(path string, columns []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write table %s: %w", filepath.Base(path), err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			record[i] = row[column]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write table %s: %w", filepath.Base(path), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write table %s: %w", filepath.Base(path), err)
	}
	return nil
}
