package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"imagegen/internal/entity"
)

type Producer interface {
	SendEvent(event entity.VariantEvent) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

// NewProducer returns a producer publishing one message per written
// variant. With no brokers configured, or when the broker cannot be
// reached, it degrades to a no-op so the generator keeps working
// without Kafka.
func NewProducer(brokers, topic string) Producer {
	if brokers == "" {
		return &noopProducer{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", brokers)
	if err != nil {
		logrus.Warnf("kafka connection failed, variant events disabled: %v", err)
		return &noopProducer{}
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}

	if err := conn.CreateTopics(topicConfigs...); err != nil {
		logrus.Debugf("could not create topic (might already exist): %v", err)
	}

	logrus.Infof("connected to kafka at %s", brokers)
	return &kafkaProducer{writer: writer}
}

func (p *kafkaProducer) SendEvent(event entity.VariantEvent) error {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.RunID),
		Value: messageBytes,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, msg)
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

// no-op producer for runs without Kafka
type noopProducer struct{}

func (m *noopProducer) SendEvent(event entity.VariantEvent) error {
	return nil
}

func (m *noopProducer) Close() error {
	return nil
}
