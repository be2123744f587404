package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/segmentio/kafka-go"
)

var _ stock.EventPublisher = (*KafkaPublisher)(nil)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
	}
}

// PublishIngestion writes one message per finished upload, keyed by ingestion id.
func (p *KafkaPublisher) PublishIngestion(ctx context.Context, event stock.IngestionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode ingestion event error: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.IngestionID.String()),
		Value: payload,
		Time:  event.CompletedAt,
	})
	if err != nil {
		return fmt.Errorf("kafka write error: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
