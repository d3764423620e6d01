package events

import "time"

const (
	TypeSessionCreated    = "SESSION_CREATED"
	TypeSessionDeleted    = "SESSION_DELETED"
	TypeExchangeCompleted = "EXCHANGE_COMPLETED"
)

func NewSessionCreated(sessionId, userId, language string) Event {
	return BaseEvent{
		Type: TypeSessionCreated,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
			"language":   language,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionDeleted(sessionId, userId string) Event {
	return BaseEvent{
		Type: TypeSessionDeleted,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
		},
		OccurredAt: time.Now(),
	}
}

// NewExchangeCompleted fires after both halves of a user/ai exchange landed.
func NewExchangeCompleted(sessionId, userId, topic string, totalMessages int) Event {
	return BaseEvent{
		Type: TypeExchangeCompleted,
		Data: map[string]interface{}{
			"session_id":     sessionId,
			"user_id":        userId,
			"topic":          topic,
			"total_messages": totalMessages,
		},
		OccurredAt: time.Now(),
	}
}
