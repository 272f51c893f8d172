package pubsub

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// amqpChannel is the slice of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes operation events to a topic exchange. The routing
// key is the operation kind; the message id carries the operation id.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	now      func() time.Time
	logger   logger.Interface
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, log logger.Interface) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	p := newAMQPPublisher(ch, exchange, log)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch amqpChannel, exchange string, log logger.Interface) *AMQPPublisher {
	return &AMQPPublisher{
		channel:  ch,
		exchange: exchange,
		now:      time.Now,
		logger:   log.Named("amqp"),
	}
}

func (p *AMQPPublisher) PublishOperation(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	event := events.NewOperationEvent(operationID, kind, p.now())
	body, err := event.Marshal()
	if err != nil {
		return apperrors.NewPublishError("failed to encode operation event", err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, kind.String(), false, false, amqp.Publishing{
		ContentType:  constants.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Key(),
		Timestamp:    event.Timestamp,
		Body:         body,
	})
	if err != nil {
		p.logger.Errorw("failed to publish operation event",
			"exchange", p.exchange,
			"operation_id", operationID,
			"error", err,
		)
		return apperrors.NewPublishError("failed to publish operation event", err)
	}

	p.logger.Debugw("operation event published", "exchange", p.exchange, "routing_key", kind)
	return nil
}

func (p *AMQPPublisher) Close() error {
	var err error
	if p.channel != nil {
		err = p.channel.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
