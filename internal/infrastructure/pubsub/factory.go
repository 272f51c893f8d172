package pubsub

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/config"
	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// CloseFunc releases the broker connection held by a publisher.
type CloseFunc func() error

func noopClose() error { return nil }

// NewPublisher builds the publisher selected by cfg.Driver. redisClient is only
// used by the redis driver and may be nil otherwise.
func NewPublisher(cfg config.BrokerConfig, redisClient *redis.Client, log logger.Interface) (events.OperationPublisher, CloseFunc, error) {
	topic := cfg.Topic
	if topic == "" {
		topic = constants.DefaultOperationsTopic
	}
	cfg.Topic = topic

	switch strings.ToLower(cfg.Driver) {
	case config.BrokerKafka, "":
		p, err := NewKafkaPublisher(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case config.BrokerRedis:
		if redisClient == nil {
			return nil, nil, fmt.Errorf("redis broker requires a redis client")
		}
		return NewRedisStreamPublisher(redisClient, topic, cfg.Redis.MaxLen, log), noopClose, nil

	case config.BrokerAMQP:
		exchange := cfg.AMQP.Exchange
		if exchange == "" {
			exchange = topic
		}
		p, err := NewAMQPPublisher(cfg.AMQP.URL, exchange, log)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case config.BrokerMemory:
		p, err := NewMemoryPublisher(0, log)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported broker driver %q", cfg.Driver)
	}
}
