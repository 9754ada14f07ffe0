// Package extract pulls raw producer data (chat history files and tree
// image metadata) out of the remote object store and assembles the
// nested JSON document the assembly phase consumes.
package extract

// RawMessage is one chat exchange as stored upstream: the farmer's
// query and the advisor's response travel together in a single record.
type RawMessage struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	QueryTime string `json:"query_time"`
	UserID    string `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// RawImage is the metadata recorded for one tree image object.
type RawImage struct {
	Filename    string            `json:"filename"`
	CreatedDate string            `json:"created_date"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	StorePath   string            `json:"s3_path"`
}

// RawProducer is everything extracted for one producer folder.
type RawProducer struct {
	ProducerID        string              `json:"producer_id"`
	ChatHistory       []RawMessage        `json:"chat_history"`
	TreeImages        map[string]RawImage `json:"tree_images"`
	TotalImages       int                 `json:"total_images"`
	TotalChatMessages int                 `json:"total_chat_messages"`
}

// RawData maps external producer identifiers to their extracted data.
type RawData map[string]RawProducer
