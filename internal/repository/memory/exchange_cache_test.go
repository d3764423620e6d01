package memory

import (
	"testing"
	"time"

	"arogya-chat-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestExchangeCache(t *testing.T) {
	c := NewExchangeCache(50 * time.Millisecond)

	exchange := &CachedExchange{
		UserMessage: entity.ChatMessage{Id: "u1", Role: "user", Content: "I have a fever"},
		AiMessage:   entity.ChatMessage{Id: "a1", Role: "ai", Content: "rest up"},
		Title:       "Fever Query",
	}
	c.Save("session-1", "user-1", "I have a fever", exchange)

	got, found := c.Get("session-1", "user-1", "I have a fever")
	assert.True(t, found)
	assert.Equal(t, "u1", got.UserMessage.Id)

	// same text in a different session is a different key
	_, found = c.Get("session-2", "user-1", "I have a fever")
	assert.False(t, found)

	// another user replaying the same pair never sees the cached exchange
	_, found = c.Get("session-1", "user-2", "I have a fever")
	assert.False(t, found)

	// different text misses
	_, found = c.Get("session-1", "user-1", "I have a cough")
	assert.False(t, found)

	time.Sleep(80 * time.Millisecond)
	_, found = c.Get("session-1", "user-1", "I have a fever")
	assert.False(t, found)
}
