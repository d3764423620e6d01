package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionMetadata mirrors the document's derived counters. TotalMessages is
// kept equal to len(Messages) by the append path; LastActivity mirrors
// UpdatedAt.
type SessionMetadata struct {
	TotalMessages int       `json:"totalMessages"`
	LastActivity  time.Time `json:"lastActivity"`
	Category      string    `json:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

// ChatSession is one conversation thread owned by a user. The session
// exclusively owns its message sequence; soft delete flips IsActive and hides
// the whole thread without removing anything.
type ChatSession struct {
	Id        uuid.UUID
	UserId    string
	Title     string
	Language  string
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	Metadata  SessionMetadata
}
