// Package client is the Go consumer of the chat API: a thin HTTP wrapper
// plus a state container mirroring what a chat frontend keeps in memory.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is returned for any non-success envelope from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type MessageMetadata struct {
	Tokens     int     `json:"tokens,omitempty"`
	Model      string  `json:"model,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type Message struct {
	Id          string           `json:"id"`
	Role        string           `json:"role"`
	Content     string           `json:"content"`
	Timestamp   time.Time        `json:"timestamp"`
	IsStreaming bool             `json:"isStreaming,omitempty"`
	Metadata    *MessageMetadata `json:"metadata,omitempty"`
}

type SessionMetadata struct {
	TotalMessages int       `json:"totalMessages"`
	LastActivity  time.Time `json:"lastActivity"`
	Category      string    `json:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

type Session struct {
	Id        string          `json:"id"`
	UserId    string          `json:"userId"`
	Title     string          `json:"title"`
	Language  string          `json:"language"`
	Messages  []Message       `json:"messages"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	IsActive  bool            `json:"isActive"`
	Metadata  SessionMetadata `json:"metadata"`
}

type CreateSessionInput struct {
	UserId         string `json:"userId"`
	Language       string `json:"language"`
	InitialMessage string `json:"initialMessage,omitempty"`
}

type UpdateSessionInput struct {
	Title    *string  `json:"title,omitempty"`
	Language *string  `json:"language,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type SendMessageInput struct {
	SessionId string `json:"sessionId"`
	Message   string `json:"message"`
	UserId    string `json:"userId"`
}

type SendResult struct {
	SessionId    string  `json:"sessionId"`
	SessionTitle string  `json:"sessionTitle"`
	UserMessage  Message `json:"userMessage"`
	AiMessage    Message `json:"aiMessage"`
}

type AssessmentInput struct {
	Symptoms []string `json:"symptoms"`
	Language string   `json:"language,omitempty"`
}

type AssessmentResult struct {
	Symptoms                   []string `json:"symptoms"`
	Severity                   string   `json:"severity"`
	Recommendations            []string `json:"recommendations"`
	ShouldSeekMedicalAttention bool     `json:"shouldSeekMedicalAttention"`
}

type Status struct {
	Api      bool `json:"api"`
	Database bool `json:"database"`
	Redis    bool `json:"redis"`
	Nats     bool `json:"nats"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a client rooted at baseURL (e.g. "http://localhost:3000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body"}
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error) {
	var data struct {
		Session Session `json:"session"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/v1/sessions", input, &data); err != nil {
		return nil, err
	}
	return &data.Session, nil
}

func (c *Client) ListSessions(ctx context.Context, userId string) ([]Session, error) {
	var data struct {
		Sessions []Session `json:"sessions"`
	}
	path := "/chat/v1/sessions?userId=" + url.QueryEscape(userId)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Sessions, nil
}

func (c *Client) GetSession(ctx context.Context, sessionId string) (*Session, error) {
	var data struct {
		Session Session `json:"session"`
	}
	if err := c.do(ctx, http.MethodGet, "/chat/v1/sessions/"+url.PathEscape(sessionId), nil, &data); err != nil {
		return nil, err
	}
	return &data.Session, nil
}

func (c *Client) UpdateSession(ctx context.Context, sessionId string, input UpdateSessionInput) (*Session, error) {
	var data struct {
		Session Session `json:"session"`
	}
	if err := c.do(ctx, http.MethodPatch, "/chat/v1/sessions/"+url.PathEscape(sessionId), input, &data); err != nil {
		return nil, err
	}
	return &data.Session, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionId string) error {
	return c.do(ctx, http.MethodDelete, "/chat/v1/sessions/"+url.PathEscape(sessionId), nil, nil)
}

func (c *Client) SendMessage(ctx context.Context, input SendMessageInput) (*SendResult, error) {
	var data SendResult
	if err := c.do(ctx, http.MethodPost, "/chat/v1/messages", input, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) Assess(ctx context.Context, input AssessmentInput) (*AssessmentResult, error) {
	var data AssessmentResult
	if err := c.do(ctx, http.MethodPost, "/chat/v1/assessment", input, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) Status(ctx context.Context) (*Status, error) {
	var data Status
	if err := c.do(ctx, http.MethodGet, "/status", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
