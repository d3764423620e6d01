package entity

import "time"

// MessageMetadata is attached only to ai-authored messages.
type MessageMetadata struct {
	Tokens     int     `json:"tokens,omitempty"`
	Model      string  `json:"model,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// ChatMessage is one turn in a session. Messages are created exactly once on
// append and never updated; they live inside their session's document and the
// JSON tags below are the persisted field names.
type ChatMessage struct {
	Id          string           `json:"id"`
	Role        string           `json:"role"`
	Content     string           `json:"content"`
	Timestamp   time.Time        `json:"timestamp"`
	IsStreaming bool             `json:"isStreaming,omitempty"`
	Metadata    *MessageMetadata `json:"metadata,omitempty"`
}
