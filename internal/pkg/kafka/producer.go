package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/retrier"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/retrier/backoff_adapter"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
	retrier  retrier.Retrier
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Timeout = 5 * time.Second

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	brokers := Brokers(cfg)

	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	publishConfig := retrier.Publish()
	publishConfig.ShouldRetry = isRetriable
	publishConfig.Notify = func(err error, next time.Duration) {
		kafkaLog.Warn("kafka publish failed, retrying",
			logger.NewField("error", err),
			logger.NewField("next", next),
		)
	}

	return &Producer{
		log:      kafkaLog,
		producer: producer,
		topic:    cfg.Topic,
		retrier:  backoff_adapter.New(publishConfig),
	}, nil
}

// Publish отправляет сообщение с ключом key, одинаковый ключ попадает в одну партицию.
func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return !errors.Is(err, sarama.ErrMessageSizeTooLarge) &&
		!errors.Is(err, sarama.ErrInvalidMessage) &&
		!errors.Is(err, sarama.ErrClosedClient)
}
