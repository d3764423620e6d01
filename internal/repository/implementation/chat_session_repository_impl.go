package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"arogya-chat-be/internal/entity"
	"arogya-chat-be/internal/mapper"
	"arogya-chat-be/internal/model"
	"arogya-chat-be/internal/repository/contract"
	"arogya-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m, err := r.mapper.ChatSessionToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.mapper.ChatSessionToEntity(m)
	if err != nil {
		return err
	}
	*session = *created
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m)
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var models []*model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatSession, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ChatSessionToEntity(m)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatSessionRepositoryImpl) AppendMessage(ctx context.Context, sessionId uuid.UUID, msg *entity.ChatMessage, now time.Time) (bool, error) {
	// Single-element array so jsonb concat appends rather than merges.
	payload, err := json.Marshal([]entity.ChatMessage{*msg})
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("id = ?", sessionId).
		Updates(map[string]interface{}{
			"messages":       gorm.Expr("messages || ?::jsonb", string(payload)),
			"total_messages": gorm.Expr("total_messages + 1"),
			"updated_at":     now,
			"last_activity":  now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ChatSessionRepositoryImpl) UpdateFields(ctx context.Context, sessionId uuid.UUID, patch *entity.SessionPatch, now time.Time) (bool, error) {
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if patch != nil {
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Language != nil {
			updates["language"] = *patch.Language
		}
		if patch.Category != nil {
			updates["category"] = *patch.Category
		}
		if patch.Tags != nil {
			raw, err := json.Marshal(patch.Tags)
			if err != nil {
				return false, err
			}
			updates["tags"] = string(raw)
		}
	}

	res := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("id = ? AND is_active = ?", sessionId, true).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ChatSessionRepositoryImpl) SoftDelete(ctx context.Context, sessionId uuid.UUID, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("id = ?", sessionId).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
