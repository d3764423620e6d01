package service

import (
	"context"
	"time"

	"arogya-chat-be/internal/dto"
	natsbus "arogya-chat-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type IHealthService interface {
	Status(ctx context.Context) *dto.StatusResponse
}

type healthService struct {
	db        *gorm.DB
	rdb       *redis.Client
	forwarder *natsbus.Publisher
}

func NewHealthService(db *gorm.DB, rdb *redis.Client, forwarder *natsbus.Publisher) IHealthService {
	return &healthService{
		db:        db,
		rdb:       rdb,
		forwarder: forwarder,
	}
}

// Status probes each dependency with a short timeout. The api flag is always
// true when this handler answers at all.
func (hs *healthService) Status(ctx context.Context) *dto.StatusResponse {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := &dto.StatusResponse{Api: true}

	if hs.db != nil {
		if sqlDB, err := hs.db.DB(); err == nil {
			status.Database = sqlDB.PingContext(probeCtx) == nil
		}
	}

	if hs.rdb != nil {
		status.Redis = hs.rdb.Ping(probeCtx).Err() == nil
	}

	if hs.forwarder != nil {
		status.Nats = hs.forwarder.Ping()
	}

	return status
}
