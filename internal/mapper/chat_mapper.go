package mapper

import (
	"encoding/json"

	"arogya-chat-be/internal/entity"
	"arogya-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) (*entity.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	messages := []entity.ChatMessage{}
	if len(s.Messages) > 0 {
		if err := json.Unmarshal(s.Messages, &messages); err != nil {
			return nil, err
		}
	}

	var tags []string
	if len(s.Tags) > 0 {
		if err := json.Unmarshal(s.Tags, &tags); err != nil {
			return nil, err
		}
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Language:  s.Language,
		Messages:  messages,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		IsActive:  s.IsActive,
		Metadata: entity.SessionMetadata{
			TotalMessages: s.TotalMessages,
			LastActivity:  s.LastActivity,
			Category:      s.Category,
			Tags:          tags,
		},
	}, nil
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) (*model.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	messages, err := m.MessagesToJSON(s.Messages)
	if err != nil {
		return nil, err
	}

	var tags datatypes.JSON
	if len(s.Metadata.Tags) > 0 {
		raw, err := json.Marshal(s.Metadata.Tags)
		if err != nil {
			return nil, err
		}
		tags = datatypes.JSON(raw)
	}

	return &model.ChatSession{
		Id:            s.Id,
		UserId:        s.UserId,
		Title:         s.Title,
		Language:      s.Language,
		Messages:      messages,
		IsActive:      s.IsActive,
		TotalMessages: s.Metadata.TotalMessages,
		LastActivity:  s.Metadata.LastActivity,
		Category:      s.Metadata.Category,
		Tags:          tags,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

// MessagesToJSON serializes a message slice into the JSONB column format.
// A nil slice persists as an empty array, never as SQL NULL.
func (m *ChatMapper) MessagesToJSON(messages []entity.ChatMessage) (datatypes.JSON, error) {
	if messages == nil {
		messages = []entity.ChatMessage{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
