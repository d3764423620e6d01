package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"arogya-chat-be/internal/constant"
	"arogya-chat-be/internal/dto"
	"arogya-chat-be/internal/entity"
	"arogya-chat-be/internal/pkg/apperrors"
	"arogya-chat-be/internal/repository/contract"
	"arogya-chat-be/internal/repository/memory"
	"arogya-chat-be/internal/repository/specification"
	"arogya-chat-be/internal/repository/unitofwork"
	"arogya-chat-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeSessionRepo is an in-memory stand-in for the Postgres repository. It
// interprets the same specifications the real implementation translates to
// SQL, so service logic is exercised against equivalent query semantics.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.ChatSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.ChatSession)}
}

func cloneSession(s *entity.ChatSession) *entity.ChatSession {
	c := *s
	c.Messages = append([]entity.ChatMessage(nil), s.Messages...)
	c.Metadata.Tags = append([]string(nil), s.Metadata.Tags...)
	return &c
}

func matchesSpecs(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.OwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		case specification.ActiveOnly:
			if !s.IsActive {
				return false
			}
		}
	}
	return true
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Id] = cloneSession(session)
	return nil
}

func (f *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if matchesSpecs(s, specs) {
			return cloneSession(s), nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*entity.ChatSession
	for _, s := range f.sessions {
		if matchesSpecs(s, specs) {
			result = append(result, cloneSession(s))
		}
	}
	for _, spec := range specs {
		if ob, ok := spec.(specification.OrderBy); ok && ob.Field == "updated_at" && ob.Desc {
			sort.Slice(result, func(i, j int) bool {
				return result[i].UpdatedAt.After(result[j].UpdatedAt)
			})
		}
	}
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(result) {
				return nil, nil
			}
			result = result[p.Offset:]
			if p.Limit < len(result) {
				result = result[:p.Limit]
			}
		}
	}
	return result, nil
}

func (f *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := f.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (f *fakeSessionRepo) AppendMessage(ctx context.Context, sessionId uuid.UUID, msg *entity.ChatMessage, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionId]
	if !ok {
		return false, nil
	}
	s.Messages = append(s.Messages, *msg)
	s.Metadata.TotalMessages++
	s.Metadata.LastActivity = now
	s.UpdatedAt = now
	return true, nil
}

func (f *fakeSessionRepo) UpdateFields(ctx context.Context, sessionId uuid.UUID, patch *entity.SessionPatch, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionId]
	if !ok || !s.IsActive {
		return false, nil
	}
	if patch != nil {
		if patch.Title != nil {
			s.Title = *patch.Title
		}
		if patch.Language != nil {
			s.Language = *patch.Language
		}
		if patch.Category != nil {
			s.Metadata.Category = *patch.Category
		}
		if patch.Tags != nil {
			s.Metadata.Tags = append([]string(nil), patch.Tags...)
		}
	}
	s.UpdatedAt = now
	return true, nil
}

func (f *fakeSessionRepo) SoftDelete(ctx context.Context, sessionId uuid.UUID, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionId]
	if !ok {
		return false, nil
	}
	s.IsActive = false
	s.UpdatedAt = now
	return true, nil
}

// txLog counts transaction lifecycle calls across every unit of work the
// factory hands out.
type txLog struct {
	mu        sync.Mutex
	begins    int
	commits   int
	rollbacks int
}

type fakeUnitOfWork struct {
	repo contract.ChatSessionRepository
	log  *txLog
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.begins++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.repo
}

type fakeUowFactory struct {
	repo contract.ChatSessionRepository
	log  txLog
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{repo: f.repo, log: &f.log}
}

type stubUsage struct {
	err error
}

func (s *stubUsage) Consume(ctx context.Context, userId string) error { return s.err }

type recordingPublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, event.EventType())
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestChatService(repo *fakeSessionRepo) (IChatService, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewChatService(
		&fakeUowFactory{repo: repo},
		memory.NewExchangeCache(10*time.Second),
		&stubUsage{},
		pub,
		noopLogger{},
	)
	return svc, pub
}

func TestCreateSessionDefaults(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, pub := newTestChatService(repo)

	res, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.DefaultSessionTitle, res.Session.Title)
	assert.Equal(t, "en", res.Session.Language)
	assert.True(t, res.Session.IsActive)
	assert.Empty(t, res.Session.Messages)
	assert.Equal(t, 0, res.Session.Metadata.TotalMessages)
	assert.Contains(t, pub.types, events.TypeSessionCreated)
}

func TestCreateSessionWithInitialMessage(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	res, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:         "user-1",
		Language:       "en",
		InitialMessage: "I have a fever today",
	})
	assert.NoError(t, err)
	// the initial message is stored verbatim, no reply, no title rewrite
	assert.Equal(t, constant.DefaultSessionTitle, res.Session.Title)
	assert.Len(t, res.Session.Messages, 1)
	assert.Equal(t, 1, res.Session.Metadata.TotalMessages)
	assert.Equal(t, constant.ChatMessageRoleUser, res.Session.Messages[0].Role)
	assert.Equal(t, "I have a fever today", res.Session.Messages[0].Content)
}

func TestSendMessageAppendsExchange(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, pub := newTestChatService(repo)

	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	assert.NoError(t, err)

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: created.Session.Id.String(),
		Message:   "I have a fever today",
		UserId:    "user-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.ChatMessageRoleUser, res.UserMessage.Role)
	assert.Equal(t, constant.ChatMessageRoleAi, res.AiMessage.Role)
	assert.Equal(t, constant.AdvisorResponses["en"]["fever"], res.AiMessage.Content)
	assert.NotNil(t, res.AiMessage.Metadata)
	assert.Equal(t, constant.AdvisorModelTag, res.AiMessage.Metadata.Model)
	assert.Equal(t, constant.AdvisorConfidence, res.AiMessage.Metadata.Confidence)
	assert.Equal(t, "Fever Query", res.SessionTitle)
	assert.Contains(t, pub.types, events.TypeExchangeCompleted)

	stored, err := svc.GetSession(context.Background(), created.Session.Id.String())
	assert.NoError(t, err)
	assert.Len(t, stored.Session.Messages, 2)
	assert.Equal(t, 2, stored.Session.Metadata.TotalMessages)
	assert.Equal(t, "Fever Query", stored.Session.Title)
}

func TestSendMessageKeepsCustomTitle(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	sessionId := created.Session.Id.String()

	customTitle := "My Health Notes"
	_, err := svc.UpdateSession(context.Background(), sessionId, &dto.UpdateSessionRequest{
		Title: &customTitle,
	})
	assert.NoError(t, err)

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionId,
		Message:   "I have a fever today",
		UserId:    "user-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, customTitle, res.SessionTitle)
}

func TestSendMessageOwnership(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: created.Session.Id.String(),
		Message:   "hello",
		UserId:    "user-2",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSendMessageValidation(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "not-a-uuid",
		Message:   "hello",
		UserId:    "user-1",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: uuid.NewString(),
		Message:   "hello",
		UserId:    "user-1",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSendMessageDedupWindow(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	sessionId := created.Session.Id.String()

	first, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionId,
		Message:   "I have a fever today",
		UserId:    "user-1",
	})
	assert.NoError(t, err)

	second, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionId,
		Message:   "I have a fever today",
		UserId:    "user-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, first.UserMessage.Id, second.UserMessage.Id)
	assert.Equal(t, first.AiMessage.Id, second.AiMessage.Id)

	stored, _ := svc.GetSession(context.Background(), sessionId)
	assert.Len(t, stored.Session.Messages, 2)
}

func TestSendMessageDedupScopedToClaimedUser(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	sessionId := created.Session.Id.String()

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionId,
		Message:   "I have a fever today",
		UserId:    "user-1",
	})
	assert.NoError(t, err)

	// replaying the owner's exact message under another identity inside the
	// dedup window must hit the ownership check, not the cached exchange
	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionId,
		Message:   "I have a fever today",
		UserId:    "user-2",
	})
	assert.Nil(t, res)
	assert.True(t, apperrors.IsNotFound(err))

	stored, _ := svc.GetSession(context.Background(), sessionId)
	assert.Len(t, stored.Session.Messages, 2)
}

func TestSendMessageQuotaExceeded(t *testing.T) {
	repo := newFakeSessionRepo()
	limitErr := &apperrors.LimitExceededError{Limit: 10, Used: 10}
	svc := NewChatService(
		&fakeUowFactory{repo: repo},
		memory.NewExchangeCache(10*time.Second),
		&stubUsage{err: limitErr},
		&recordingPublisher{},
		noopLogger{},
	)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: created.Session.Id.String(),
		Message:   "hello",
		UserId:    "user-1",
	})
	assert.ErrorIs(t, err, limitErr)
}

func TestDeleteSessionIdempotent(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, pub := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	sessionId := created.Session.Id.String()

	assert.NoError(t, svc.DeleteSession(context.Background(), sessionId))
	assert.NoError(t, svc.DeleteSession(context.Background(), sessionId))
	assert.Contains(t, pub.types, events.TypeSessionDeleted)

	_, err := svc.GetSession(context.Background(), sessionId)
	assert.True(t, apperrors.IsNotFound(err))

	list, err := svc.GetAllSessions(context.Background(), "user-1", 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, list.Sessions)
	assert.Zero(t, list.Total)

	err = svc.DeleteSession(context.Background(), uuid.NewString())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	sessionId := created.Session.Id.String()

	title := "Renamed"
	category := "general"
	res, err := svc.UpdateSession(context.Background(), sessionId, &dto.UpdateSessionRequest{
		Title:    &title,
		Category: &category,
		Tags:     []string{"fever", "follow-up"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", res.Session.Title)
	assert.Equal(t, "general", res.Session.Metadata.Category)
	assert.Equal(t, []string{"fever", "follow-up"}, res.Session.Metadata.Tags)

	_, err = svc.UpdateSession(context.Background(), sessionId, &dto.UpdateSessionRequest{})
	assert.True(t, apperrors.IsValidation(err))

	assert.NoError(t, svc.DeleteSession(context.Background(), sessionId))
	_, err = svc.UpdateSession(context.Background(), sessionId, &dto.UpdateSessionRequest{Title: &title})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetAllSessionsOrdering(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	first, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})
	second, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})

	// Touch the first session so it becomes the most recently updated.
	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: first.Session.Id.String(),
		Message:   "checking in",
		UserId:    "user-1",
	})
	assert.NoError(t, err)

	list, err := svc.GetAllSessions(context.Background(), "user-1", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, list.Sessions, 2)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, first.Session.Id, list.Sessions[0].Id)
	assert.Equal(t, second.Session.Id, list.Sessions[1].Id)
}

func TestGetAllSessionsPagination(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestChatService(repo)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
			UserId:   "user-1",
			Language: "en",
		})
		assert.NoError(t, err)
		ids = append(ids, created.Session.Id)
		time.Sleep(time.Millisecond)
	}

	page, err := svc.GetAllSessions(context.Background(), "user-1", 2, 0)
	assert.NoError(t, err)
	assert.Len(t, page.Sessions, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, ids[2], page.Sessions[0].Id)

	rest, err := svc.GetAllSessions(context.Background(), "user-1", 2, 2)
	assert.NoError(t, err)
	assert.Len(t, rest.Sessions, 1)
	assert.Equal(t, int64(3), rest.Total)
	assert.Equal(t, ids[0], rest.Sessions[0].Id)
}

func TestUpdateSessionTransactionLifecycle(t *testing.T) {
	repo := newFakeSessionRepo()
	factory := &fakeUowFactory{repo: repo}
	svc := NewChatService(
		factory,
		memory.NewExchangeCache(10*time.Second),
		&stubUsage{},
		&recordingPublisher{},
		noopLogger{},
	)

	created, _ := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		UserId:   "user-1",
		Language: "en",
	})

	title := "Renamed"
	_, err := svc.UpdateSession(context.Background(), created.Session.Id.String(), &dto.UpdateSessionRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, 1, factory.log.begins)
	assert.Equal(t, 1, factory.log.commits)
	assert.Equal(t, 0, factory.log.rollbacks)

	_, err = svc.UpdateSession(context.Background(), uuid.NewString(), &dto.UpdateSessionRequest{Title: &title})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 2, factory.log.begins)
	assert.Equal(t, 1, factory.log.commits)
	assert.Equal(t, 1, factory.log.rollbacks)
}
