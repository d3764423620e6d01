package service

import (
	"context"
	"encoding/json"

	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

// activityEnvelope is the wire form an event takes on the in-process bus.
type activityEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt string                 `json:"occurred_at"`
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

// Publish puts an activity event on the in-process bus. Publish failures are
// logged and swallowed: activity tracking never blocks a chat operation.
func (ps *publisherService) Publish(ctx context.Context, event events.Event) error {
	envelope := activityEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		ps.log.Error("EVENTS", "Failed to marshal activity event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return nil
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.log.Error("EVENTS", "Failed to publish activity event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
	return nil
}
