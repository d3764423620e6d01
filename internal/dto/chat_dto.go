package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageMetadataDTO struct {
	Tokens     int     `json:"tokens,omitempty"`
	Model      string  `json:"model,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type MessageResponse struct {
	Id          string              `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	Timestamp   time.Time           `json:"timestamp"`
	IsStreaming bool                `json:"isStreaming,omitempty"`
	Metadata    *MessageMetadataDTO `json:"metadata,omitempty"`
}

type SessionMetadataDTO struct {
	TotalMessages int       `json:"totalMessages"`
	LastActivity  time.Time `json:"lastActivity"`
	Category      string    `json:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

type SessionResponse struct {
	Id        uuid.UUID          `json:"id"`
	UserId    string             `json:"userId"`
	Title     string             `json:"title"`
	Language  string             `json:"language"`
	Messages  []MessageResponse  `json:"messages"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	IsActive  bool               `json:"isActive"`
	Metadata  SessionMetadataDTO `json:"metadata"`
}

type CreateSessionRequest struct {
	UserId         string `json:"userId" validate:"required"`
	Language       string `json:"language" validate:"required,oneof=en hi od"`
	InitialMessage string `json:"initialMessage,omitempty"`
}

type CreateSessionResponse struct {
	Session SessionResponse `json:"session"`
}

type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int64             `json:"total"`
}

type GetSessionResponse struct {
	Session SessionResponse `json:"session"`
}

type UpdateSessionRequest struct {
	Title    *string  `json:"title,omitempty"`
	Language *string  `json:"language,omitempty" validate:"omitempty,oneof=en hi od"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type SendMessageRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	UserId    string `json:"userId" validate:"required"`
}

type SendMessageResponse struct {
	SessionId    uuid.UUID       `json:"sessionId"`
	SessionTitle string          `json:"sessionTitle"`
	UserMessage  MessageResponse `json:"userMessage"`
	AiMessage    MessageResponse `json:"aiMessage"`
}
