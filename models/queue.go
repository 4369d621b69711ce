package models

// MessageBatch is the envelope accepted by the Foundation queue API
// (POST /v1/queues/{name}/messages).
type MessageBatch struct {
	Messages []Message `json:"messages"`
}

// Message is a single queue message. Body holds the JSON-encoded payload as
// a string, not as nested JSON.
type Message struct {
	Body string `json:"body"`
}

// NewSingleMessageBatch wraps one already-encoded payload body in a batch
// envelope.
func NewSingleMessageBatch(body string) MessageBatch {
	return MessageBatch{Messages: []Message{{Body: body}}}
}
