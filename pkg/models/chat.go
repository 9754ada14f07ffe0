package models

// Message senders recognized by the dashboard.
const (
	MessageFromFarmer  = "farmer"
	MessageFromAdvisor = "advisor"
)

// ChatMessage is a single message in a producer's conversation with an
// advisor.
type ChatMessage struct {
	Date    string `json:"date"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// ChatThread groups all messages for one producer, in the order the
// source rows were written. No deduplication is applied.
type ChatThread struct {
	ProducerID int           `json:"producer_id"`
	Messages   []ChatMessage `json:"messages"`
}
