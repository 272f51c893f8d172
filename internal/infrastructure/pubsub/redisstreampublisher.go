package pubsub

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// Stream entry field names.
const (
	streamFieldKey   = "key"
	streamFieldValue = "value"
)

// RedisStreamPublisher appends operation events to a Redis stream named after the topic.
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
	now    func() time.Time
	logger logger.Interface
}

func NewRedisStreamPublisher(client *redis.Client, stream string, maxLen int64, log logger.Interface) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		now:    time.Now,
		logger: log.Named("redis-stream"),
	}
}

func (p *RedisStreamPublisher) PublishOperation(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	event := events.NewOperationEvent(operationID, kind, p.now())
	body, err := event.Marshal()
	if err != nil {
		return apperrors.NewPublishError("failed to encode operation event", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			streamFieldKey:   event.Key(),
			streamFieldValue: string(body),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	entryID, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		p.logger.Errorw("failed to append operation event",
			"stream", p.stream,
			"operation_id", operationID,
			"error", err,
		)
		return apperrors.NewPublishError("failed to publish operation event", err)
	}

	p.logger.Debugw("operation event appended to stream",
		"stream", p.stream,
		"operation_id", operationID,
		"entry_id", entryID,
	)
	return nil
}
