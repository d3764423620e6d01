package service

import (
	"context"
	"fmt"
	"time"

	"arogya-chat-be/internal/pkg/apperrors"
	"arogya-chat-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type IUsageService interface {
	// Consume counts one exchange against the user's daily quota.
	Consume(ctx context.Context, userId string) error
}

type usageService struct {
	rdb   *redis.Client
	limit int
	log   logger.ILogger
}

func NewUsageService(rdb *redis.Client, dailyLimit int, log logger.ILogger) IUsageService {
	return &usageService{
		rdb:   rdb,
		limit: dailyLimit,
		log:   log,
	}
}

func usageKey(userId string, day time.Time) string {
	return fmt.Sprintf("chat:usage:%s:%s", userId, day.Format("2006-01-02"))
}

// Consume increments the per-user counter for the current UTC day and fails
// with LimitExceededError once the configured cap is passed. A Redis outage
// does not block chat; the counter is advisory.
func (us *usageService) Consume(ctx context.Context, userId string) error {
	if us.limit <= 0 || us.rdb == nil {
		return nil
	}

	now := time.Now().UTC()
	key := usageKey(userId, now)

	count, err := us.rdb.Incr(ctx, key).Result()
	if err != nil {
		us.log.Warn("USAGE", "Redis unavailable, skipping quota check", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil
	}

	midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	if count == 1 {
		us.rdb.ExpireAt(ctx, key, midnight)
	}

	if count > int64(us.limit) {
		return &apperrors.LimitExceededError{
			Limit:      us.limit,
			Used:       int(count - 1),
			ResetAfter: midnight,
		}
	}

	return nil
}
