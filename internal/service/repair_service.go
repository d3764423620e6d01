package service

import (
	"context"
	"time"

	"arogya-chat-be/internal/constant"
	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/internal/repository/specification"
	"arogya-chat-be/internal/repository/unitofwork"
	"arogya-chat-be/pkg/advisor"
)

type IRepairService interface {
	// RepairOnce finishes half-written exchanges and returns how many it fixed.
	RepairOnce(ctx context.Context) (int, error)
}

// repairService sweeps active sessions whose last message is a user message.
// Message appends run unguarded, so a crash between the user append and the
// reply append leaves exactly that shape behind.
type repairService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewRepairService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IRepairService {
	return &repairService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (rs *repairService) RepairOnce(ctx context.Context) (int, error) {
	uow := rs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	sessions, err := repo.FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, sess := range sessions {
		if len(sess.Messages) == 0 {
			continue
		}
		last := sess.Messages[len(sess.Messages)-1]
		if last.Role != constant.ChatMessageRoleUser {
			continue
		}

		reply := advisor.Reply(last.Content, sess.Language)
		now := time.Now()
		aiMessage := newAiMessage(reply, now)

		matched, err := repo.AppendMessage(ctx, sess.Id, &aiMessage, now)
		if err != nil {
			rs.log.Error("REPAIR", "Failed to append repair reply", map[string]interface{}{
				"session_id": sess.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		if matched {
			repaired++
			rs.log.Info("REPAIR", "Completed dangling exchange", map[string]interface{}{
				"session_id": sess.Id.String(),
			})
		}
	}

	return repaired, nil
}
