package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Producer interface defines the contract for publishing confirmation events
type Producer interface {
	PublishOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig(brokers []string, topic string) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          brokers,
		Topic:            topic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// kafkaProducer publishes order confirmations to Kafka
type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaProducer creates a new Kafka confirmation producer
func NewKafkaProducer(config *KafkaProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one recipient's events on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka confirmation producer created successfully")
	return &kafkaProducer{producer: producer, config: config}, nil
}

func (kp *kafkaProducer) PublishOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error {
	messageBytes, err := confirmation.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.Topic,
		Key:       sarama.StringEncoder(confirmation.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(confirmation),
		Timestamp: confirmation.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send confirmation to Kafka: %w", err)
	}

	log.Printf("📤 Order confirmation published - Topic: %s, Partition: %d, Offset: %d, Ref: %s, Recipient: %s",
		kp.config.Topic, partition, offset, confirmation.OrderRef, confirmation.RecipientEmail)

	return nil
}

func (kp *kafkaProducer) createHeaders(confirmation *OrderConfirmation) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("confirmation_id"), Value: []byte(confirmation.ID.String())},
		{Key: []byte("order_ref"), Value: []byte(confirmation.OrderRef)},
		{Key: []byte("recipient_email"), Value: []byte(confirmation.RecipientEmail)},
		{Key: []byte("producer"), Value: []byte("cinebook-notifications")},
		{Key: []byte("created_at"), Value: []byte(confirmation.CreatedAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (kp *kafkaProducer) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		log.Printf("📤 Kafka confirmation producer closed")
	}
	return nil
}
