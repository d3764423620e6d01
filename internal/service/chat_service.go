package service

import (
	"context"
	"strings"
	"time"

	"arogya-chat-be/internal/constant"
	"arogya-chat-be/internal/dto"
	"arogya-chat-be/internal/entity"
	"arogya-chat-be/internal/pkg/apperrors"
	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/internal/repository/memory"
	"arogya-chat-be/internal/repository/specification"
	"arogya-chat-be/internal/repository/unitofwork"
	"arogya-chat-be/pkg/advisor"
	"arogya-chat-be/pkg/events"

	"github.com/google/uuid"
)

// IChatService defines the chat session lifecycle and messaging interface
type IChatService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId string, limit, offset int) (*dto.ListSessionsResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error)
	UpdateSession(ctx context.Context, sessionId string, request *dto.UpdateSessionRequest) (*dto.GetSessionResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	exchangeCache *memory.ExchangeCache
	usage         IUsageService
	publisher     IPublisherService
	log           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	exchangeCache *memory.ExchangeCache,
	usage IUsageService,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		exchangeCache: exchangeCache,
		usage:         usage,
		publisher:     publisher,
		log:           log,
	}
}

func parseSessionId(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidation("invalid session id")
	}
	return id, nil
}

// CreateSession creates a new chat session. An initial message is stored
// as-is with no reply and no title derivation; the title rewrite belongs to
// the first SendMessage into an empty session.
func (cs *chatService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    request.UserId,
		Title:     constant.DefaultSessionTitle,
		Language:  request.Language,
		Messages:  []entity.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
		Metadata: entity.SessionMetadata{
			TotalMessages: 0,
			LastActivity:  now,
		},
	}

	if text := strings.TrimSpace(request.InitialMessage); text != "" {
		chatSession.Messages = []entity.ChatMessage{newUserMessage(text, now)}
		chatSession.Metadata.TotalMessages = 1
	}

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}

	cs.publisher.Publish(ctx, events.NewSessionCreated(chatSession.Id.String(), chatSession.UserId, chatSession.Language))

	return &dto.CreateSessionResponse{Session: toSessionResponse(&chatSession)}, nil
}

// GetAllSessions lists the user's active sessions, most recent activity
// first. A limit of 0 returns the full list; total always counts every
// active session the user owns, not just the returned page.
func (cs *chatService) GetAllSessions(ctx context.Context, userId string, limit, offset int) (*dto.ListSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	chatSessions, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	total, err := repo.Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	response := make([]dto.SessionResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, toSessionResponse(s))
	}

	return &dto.ListSessionsResponse{Sessions: response, Total: total}, nil
}

// GetSession fetches one session by id. Lookup is by id alone; the session
// history endpoint carries no ownership claim to check against.
func (cs *chatService) GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error) {
	id, err := parseSessionId(sessionId)
	if err != nil {
		return nil, err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.NewNotFound("session")
	}

	return &dto.GetSessionResponse{Session: toSessionResponse(sess)}, nil
}

// UpdateSession merges the caller's patch into the session metadata fields.
// Like GetSession it addresses the session by id alone. The check, write and
// re-read run in one transaction so the returned session reflects exactly
// this patch.
func (cs *chatService) UpdateSession(ctx context.Context, sessionId string, request *dto.UpdateSessionRequest) (*dto.GetSessionResponse, error) {
	id, err := parseSessionId(sessionId)
	if err != nil {
		return nil, err
	}

	patch := &entity.SessionPatch{
		Title:    request.Title,
		Language: request.Language,
		Category: request.Category,
		Tags:     request.Tags,
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidation("no updatable fields in request")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	repo := uow.ChatSessionRepository()

	matched, err := repo.UpdateFields(ctx, id, patch, time.Now())
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if !matched {
		uow.Rollback()
		return nil, apperrors.NewNotFound("session")
	}

	updated, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if updated == nil {
		uow.Rollback()
		return nil, apperrors.NewNotFound("session")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.GetSessionResponse{Session: toSessionResponse(updated)}, nil
}

// DeleteSession soft-deletes the session. Deleting an already deleted
// session succeeds again; only an id that never existed is a 404.
func (cs *chatService) DeleteSession(ctx context.Context, sessionId string) error {
	id, err := parseSessionId(sessionId)
	if err != nil {
		return err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	sess, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if sess == nil {
		return apperrors.NewNotFound("session")
	}

	matched, err := repo.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NewNotFound("session")
	}

	cs.publisher.Publish(ctx, events.NewSessionDeleted(sessionId, sess.UserId))

	return nil
}

// SendMessage appends the user's message, resolves the canned guidance reply
// and appends it as the ai message. The two appends run unguarded: a crash
// between them leaves a trailing user message for the repair pass to finish.
func (cs *chatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	id, err := parseSessionId(request.SessionId)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(request.Message)
	if text == "" {
		return nil, apperrors.NewValidation("message must not be empty")
	}

	// A client retry of the identical message inside the dedup window gets
	// the stored exchange back instead of a duplicate append. The cache key
	// includes the claimed userId, so a replay under another identity misses
	// and hits the ownership check below.
	if cached, found := cs.exchangeCache.Get(request.SessionId, request.UserId, text); found {
		return &dto.SendMessageResponse{
			SessionId:    id,
			SessionTitle: cached.Title,
			UserMessage:  toMessageResponse(cached.UserMessage),
			AiMessage:    toMessageResponse(cached.AiMessage),
		}, nil
	}

	if err := cs.usage.Consume(ctx, request.UserId); err != nil {
		return nil, err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	sess, err := repo.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: request.UserId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.NewNotFound("session")
	}

	wasEmpty := len(sess.Messages) == 0
	now := time.Now()

	userMessage := newUserMessage(text, now)
	matched, err := repo.AppendMessage(ctx, id, &userMessage, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, apperrors.NewNotFound("session")
	}

	topic, reply, title := advisor.ClassifyAndReply(text, sess.Language)

	aiMessage := newAiMessage(reply, now.Add(time.Millisecond))
	if _, err := repo.AppendMessage(ctx, id, &aiMessage, now); err != nil {
		return nil, err
	}

	sessionTitle := sess.Title
	if wasEmpty && sess.Title == constant.DefaultSessionTitle {
		sessionTitle = title
		if _, err := repo.UpdateFields(ctx, id, &entity.SessionPatch{Title: &sessionTitle}, now); err != nil {
			cs.log.Warn("CHAT", "Failed to derive session title", map[string]interface{}{
				"session_id": request.SessionId,
				"error":      err.Error(),
			})
			sessionTitle = sess.Title
		}
	}

	cs.exchangeCache.Save(request.SessionId, request.UserId, text, &memory.CachedExchange{
		UserMessage: userMessage,
		AiMessage:   aiMessage,
		Title:       sessionTitle,
	})

	cs.publisher.Publish(ctx, events.NewExchangeCompleted(
		request.SessionId, request.UserId, string(topic), sess.Metadata.TotalMessages+2,
	))

	return &dto.SendMessageResponse{
		SessionId:    id,
		SessionTitle: sessionTitle,
		UserMessage:  toMessageResponse(userMessage),
		AiMessage:    toMessageResponse(aiMessage),
	}, nil
}

func newUserMessage(content string, at time.Time) entity.ChatMessage {
	return entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      constant.ChatMessageRoleUser,
		Content:   content,
		Timestamp: at,
	}
}

func newAiMessage(content string, at time.Time) entity.ChatMessage {
	return entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      constant.ChatMessageRoleAi,
		Content:   content,
		Timestamp: at,
		Metadata: &entity.MessageMetadata{
			Model:      constant.AdvisorModelTag,
			Confidence: constant.AdvisorConfidence,
		},
	}
}

func toMessageResponse(m entity.ChatMessage) dto.MessageResponse {
	resp := dto.MessageResponse{
		Id:          m.Id,
		Role:        m.Role,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
		IsStreaming: m.IsStreaming,
	}
	if m.Metadata != nil {
		resp.Metadata = &dto.MessageMetadataDTO{
			Tokens:     m.Metadata.Tokens,
			Model:      m.Metadata.Model,
			Confidence: m.Metadata.Confidence,
		}
	}
	return resp
}

func toSessionResponse(s *entity.ChatSession) dto.SessionResponse {
	messages := make([]dto.MessageResponse, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, toMessageResponse(m))
	}

	return dto.SessionResponse{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Language:  s.Language,
		Messages:  messages,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		IsActive:  s.IsActive,
		Metadata: dto.SessionMetadataDTO{
			TotalMessages: s.Metadata.TotalMessages,
			LastActivity:  s.Metadata.LastActivity,
			Category:      s.Metadata.Category,
			Tags:          s.Metadata.Tags,
		},
	}
}
