package pubsub

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/config"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// KafkaPublisher writes operation events to a Kafka topic, keyed by operation id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
	logger   logger.Interface
}

// NewKafkaProducerConfig builds the producer settings: all in-sync replicas
// must acknowledge and delivery reports are returned to the caller.
func NewKafkaProducerConfig(cfg config.KafkaConfig) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = cfg.RetryMax
	if cfg.RetryMax <= 0 {
		sc.Producer.Retry.Max = 3
	}
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	return sc
}

// NewKafkaPublisher connects a synchronous producer to the configured brokers.
func NewKafkaPublisher(cfg config.BrokerConfig, log logger.Interface) (*KafkaPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, NewKafkaProducerConfig(cfg.Kafka))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.Topic, log), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, log logger.Interface) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		now:      time.Now,
		logger:   log.Named("kafka"),
	}
}

// PublishOperation sends one message and waits for the broker acknowledgement.
func (p *KafkaPublisher) PublishOperation(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	event := events.NewOperationEvent(operationID, kind, p.now())
	body, err := event.Marshal()
	if err != nil {
		return apperrors.NewPublishError("failed to encode operation event", err)
	}

	p.logger.Infow("[Kafka] Publishing operation", "topic", p.topic, "operation_id", operationID, "operation", kind)

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		p.logger.Errorw("[Kafka] publish failed", "topic", p.topic, "operation_id", operationID, "error", err)
		return apperrors.NewPublishError("failed to publish operation event", err)
	}

	p.logger.Infow("[Kafka] Operation published",
		"topic", p.topic,
		"operation_id", operationID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
