package contract

import (
	"context"
	"time"

	"arogya-chat-be/internal/entity"
	"arogya-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AppendMessage pushes one message onto the session's embedded array,
	// increments the message counter and bumps updated_at/last_activity in a
	// single statement. It reports whether a row matched.
	AppendMessage(ctx context.Context, sessionId uuid.UUID, msg *entity.ChatMessage, now time.Time) (bool, error)

	// UpdateFields merges the patch into the session where it is still
	// active and bumps updated_at. It reports whether a row matched.
	UpdateFields(ctx context.Context, sessionId uuid.UUID, patch *entity.SessionPatch, now time.Time) (bool, error)

	// SoftDelete flips is_active off regardless of its current value, so a
	// second delete of the same id still matches. It reports whether the id
	// ever existed.
	SoftDelete(ctx context.Context, sessionId uuid.UUID, now time.Time) (bool, error)
}
