package assembler

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/extract"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteReferenceTables(t *testing.T) {
	data := extract.RawData{
		"p1": {
			ChatHistory: []extract.RawMessage{
				{Query: "Hi", Response: "Hello", QueryTime: "2023-06-01T10:00:00Z", UserID: "u1"},
			},
			TreeImages: map[string]extract.RawImage{
				"p1/tree.jpg": {
					Filename:    "tree.jpg",
					CreatedDate: "2023-05-01T00:00:00Z",
					StorePath:   "s3://bucket/p1/tree.jpg",
					Metadata:    map[string]string{"leaf_condition": "Healthy"},
				},
			},
			TotalImages:       1,
			TotalChatMessages: 1,
		},
		"p2": {
			TreeImages: map[string]extract.RawImage{
				"p2/a.jpg": {Filename: "a.jpg", StorePath: "s3://bucket/p2/a.jpg"},
			},
			TotalImages: 1,
		},
	}

	dir := t.TempDir()
	require.NoError(t, WriteReferenceTables(dir, data, Summarize(data)))

	summaryRows := readCSV(t, filepath.Join(dir, ProducerSummaryFile))
	require.Len(t, summaryRows, 3)
	assert.Equal(t, []string{"producer_id", "total_images", "total_messages", "last_active"}, summaryRows[0])
	assert.Equal(t, []string{"p1", "1", "1", "2023-06-01"}, summaryRows[1])
	assert.Equal(t, "p2", summaryRows[2][0])

	imageRows := readCSV(t, filepath.Join(dir, ImagesFile))
	require.Len(t, imageRows, 3)
	assert.Equal(t, []string{"producer_id", "filename", "created_date", "s3_path", "meta_leaf_condition"}, imageRows[0])
	assert.Equal(t, []string{"p1", "tree.jpg", "2023-05-01T00:00:00Z", "s3://bucket/p1/tree.jpg", "Healthy"}, imageRows[1])
	assert.Equal(t, "", imageRows[2][4])

	messageRows := readCSV(t, filepath.Join(dir, MessagesFile))
	require.Len(t, messageRows, 2)
	assert.Equal(t, []string{"p1", "2023-06-01T10:00:00Z", "Hi", "Hello", "u1"}, messageRows[1])
}

func TestWriteReferenceTablesEmptyData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteReferenceTables(dir, extract.RawData{}, nil))

	for _, file := range []string{ProducerSummaryFile, ImagesFile, MessagesFile} {
		rows := readCSV(t, filepath.Join(dir, file))
		assert.Len(t, rows, 1, file)
	}
}
