package client

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MessageState string

const (
	StatePending MessageState = "pending"
	StateSent    MessageState = "sent"
	StateFailed  MessageState = "failed"
)

// TrackedMessage is a message as the UI sees it: the wire message plus the
// delivery state and the correlation id used to reconcile the server reply
// with the optimistic copy.
type TrackedMessage struct {
	Message
	CorrelationId string       `json:"correlationId,omitempty"`
	State         MessageState `json:"state"`
}

// State is the client-side store: the session list, the selected session and
// its message timeline with optimistic sends. All methods are safe for
// concurrent use.
type State struct {
	mu          sync.Mutex
	sessions    []Session
	currentId   string
	messages    []TrackedMessage
	inFlight    string // correlation id of the send in progress, "" when idle
	searchQuery string
	language    string
	sidebarOpen bool
}

func NewState() *State {
	return &State{language: "en", sidebarOpen: true}
}

func (s *State) SetLanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = language
}

func (s *State) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *State) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

func (s *State) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

func (s *State) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *State) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SetSessions replaces the session list wholesale, e.g. after ListSessions.
func (s *State) SetSessions(sessions []Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]Session(nil), sessions...)
}

func (s *State) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Session(nil), s.sessions...)
}

// SelectSession switches the active session and loads its stored messages
// into the timeline. Pending sends from the previous session are dropped.
func (s *State) SelectSession(sessionId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.Id == sessionId {
			s.currentId = sessionId
			s.inFlight = ""
			s.messages = make([]TrackedMessage, 0, len(sess.Messages))
			for _, m := range sess.Messages {
				s.messages = append(s.messages, TrackedMessage{Message: m, State: StateSent})
			}
			return true
		}
	}
	return false
}

func (s *State) CurrentSessionId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentId
}

func (s *State) Messages() []TrackedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TrackedMessage(nil), s.messages...)
}

// BeginSend appends an optimistic user message and reserves the send slot.
// Only one send may be in flight; a second call is a no-op returning false.
func (s *State) BeginSend(text string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight != "" || s.currentId == "" {
		return "", false
	}

	correlationId := uuid.NewString()
	s.inFlight = correlationId
	s.messages = append(s.messages, TrackedMessage{
		Message: Message{
			Id:        correlationId,
			Role:      "user",
			Content:   text,
			Timestamp: time.Now(),
		},
		CorrelationId: correlationId,
		State:         StatePending,
	})
	return correlationId, true
}

// CompleteSend reconciles the server result with the optimistic message: the
// user message takes the server id and flips to sent, the ai message is
// appended, and the session title is refreshed.
func (s *State) CompleteSend(correlationId string, result *SendResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight == correlationId {
		s.inFlight = ""
	}

	for i := range s.messages {
		if s.messages[i].CorrelationId == correlationId {
			s.messages[i].Message = result.UserMessage
			s.messages[i].State = StateSent
			break
		}
	}

	s.messages = append(s.messages, TrackedMessage{Message: result.AiMessage, State: StateSent})

	for i := range s.sessions {
		if s.sessions[i].Id == result.SessionId {
			s.sessions[i].Title = result.SessionTitle
			s.sessions[i].UpdatedAt = result.AiMessage.Timestamp
			break
		}
	}
}

// CancelSend marks the optimistic message failed but keeps it in the
// timeline: the user aborted, the text should survive for a retry.
func (s *State) CancelSend(correlationId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight == correlationId {
		s.inFlight = ""
	}
	for i := range s.messages {
		if s.messages[i].CorrelationId == correlationId {
			s.messages[i].State = StateFailed
			return
		}
	}
}

// FailSend removes the optimistic message: the transport failed, nothing was
// delivered, the timeline should not show a ghost.
func (s *State) FailSend(correlationId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight == correlationId {
		s.inFlight = ""
	}
	for i := range s.messages {
		if s.messages[i].CorrelationId == correlationId {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

// FilteredSessions returns sessions whose title or any message content
// contains the query, case insensitive. An empty query returns everything.
func (s *State) FilteredSessions(query string) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Session(nil), s.sessions...)
	}

	var matched []Session
	for _, sess := range s.sessions {
		if strings.Contains(strings.ToLower(sess.Title), query) {
			matched = append(matched, sess)
			continue
		}
		for _, m := range sess.Messages {
			if strings.Contains(strings.ToLower(m.Content), query) {
				matched = append(matched, sess)
				break
			}
		}
	}
	return matched
}

// Group labels for the sidebar, in display order.
const (
	GroupToday        = "Today"
	GroupYesterday    = "Yesterday"
	GroupPreviousWeek = "Previous 7 Days"
	GroupOlder        = "Older"
)

// GroupSessions buckets sessions by recency of their last update relative to
// now, newest first inside each bucket.
func (s *State) GroupSessions(now time.Time) map[string][]Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfWeek := startOfToday.AddDate(0, 0, -7)

	groups := make(map[string][]Session)
	for _, sess := range s.sessions {
		switch {
		case !sess.UpdatedAt.Before(startOfToday):
			groups[GroupToday] = append(groups[GroupToday], sess)
		case !sess.UpdatedAt.Before(startOfYesterday):
			groups[GroupYesterday] = append(groups[GroupYesterday], sess)
		case !sess.UpdatedAt.Before(startOfWeek):
			groups[GroupPreviousWeek] = append(groups[GroupPreviousWeek], sess)
		default:
			groups[GroupOlder] = append(groups[GroupOlder], sess)
		}
	}

	for _, bucket := range groups {
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].UpdatedAt.After(bucket[j].UpdatedAt)
		})
	}
	return groups
}

// snapshot is the persisted subset of the state. Pending sends, the
// in-flight marker and the search query are deliberately transient.
type snapshot struct {
	Sessions    []Session `json:"sessions"`
	CurrentId   string    `json:"currentId"`
	Language    string    `json:"language"`
	SidebarOpen bool      `json:"sidebarOpen"`
}

// Snapshot serializes the durable part of the state for local persistence.
func (s *State) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(snapshot{
		Sessions:    s.sessions,
		CurrentId:   s.currentId,
		Language:    s.language,
		SidebarOpen: s.sidebarOpen,
	})
}

// Restore loads a snapshot produced by Snapshot. The message timeline is
// rebuilt from the restored current session.
func (s *State) Restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions = snap.Sessions
	s.currentId = ""
	s.messages = nil
	s.inFlight = ""
	s.searchQuery = ""
	s.language = snap.Language
	s.sidebarOpen = snap.SidebarOpen
	s.mu.Unlock()

	if snap.CurrentId != "" {
		s.SelectSession(snap.CurrentId)
	}
	return nil
}
