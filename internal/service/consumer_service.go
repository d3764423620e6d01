package service

import (
	"context"
	"encoding/json"
	"time"

	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/pkg/events"
	natsbus "arogya-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process activity bus: every event is logged
// and, when a NATS publisher is wired, forwarded onto the shared stream.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder *natsbus.Publisher
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	forwarder *natsbus.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope activityEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("EVENTS", "Failed to unmarshal activity event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("EVENTS", "Activity event", map[string]interface{}{
		"type":    envelope.Type,
		"payload": envelope.Payload,
	})

	if cs.forwarder != nil {
		occurredAt, err := time.Parse(time.RFC3339, envelope.OccurredAt)
		if err != nil {
			occurredAt = time.Now()
		}
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: occurredAt,
		}
		if err := cs.forwarder.Publish(ctx, event); err != nil {
			cs.log.Warn("EVENTS", "Failed to forward activity event to NATS", map[string]interface{}{
				"type":  envelope.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
