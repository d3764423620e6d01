package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"arogya-chat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CachedExchange is the outcome of one send kept around briefly so a client
// retry of the identical message returns the original pair instead of
// appending a duplicate exchange.
type CachedExchange struct {
	UserMessage entity.ChatMessage
	AiMessage   entity.ChatMessage
	Title       string
}

type ExchangeCache struct {
	cache *cache.Cache
}

func NewExchangeCache(window time.Duration) *ExchangeCache {
	c := cache.New(window, 2*window)
	return &ExchangeCache{
		cache: c,
	}
}

// The key carries the claimed userId so a hit can only be served back to the
// same caller; another user replaying the pair must fall through to the
// ownership lookup.
func key(sessionId, userId, text string) string {
	sum := sha256.Sum256([]byte(sessionId + "\x00" + userId + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

func (r *ExchangeCache) Save(sessionId, userId, text string, exchange *CachedExchange) {
	r.cache.Set(key(sessionId, userId, text), exchange, cache.DefaultExpiration)
}

func (r *ExchangeCache) Get(sessionId, userId, text string) (*CachedExchange, bool) {
	if x, found := r.cache.Get(key(sessionId, userId, text)); found {
		return x.(*CachedExchange), true
	}
	return nil, false
}
