package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"devfolio/internal/application/service"
	"devfolio/internal/config"
	"devfolio/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

type KafkaProducerClient struct {
	portfolioWriter *kafka.Writer
	logger          logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.")

	return &KafkaProducerClient{portfolioWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, ev service.PortfolioEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("cannot marshal portfolio event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(ev.OwnerID.String()),
		Value: payload,
	}
	if err := c.portfolioWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish portfolio event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.portfolioWriter != nil {
		c.portfolioWriter.Close()
	}
	c.logger.Info("Closed Kafka producer")
}
