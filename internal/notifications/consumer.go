package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

// Consumer interface defines the contract for the confirmation workers
type Consumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
}

// ConsumerConfig contains configuration for the Kafka consumer group
type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeout       time.Duration
	HeartbeatInterval    time.Duration
	MaxProcessingTime    time.Duration
	AutoCommit           bool
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig(brokers []string, groupID, topic string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              brokers,
		GroupID:              groupID,
		Topics:               []string{topic},
		SessionTimeout:       30 * time.Second,
		HeartbeatInterval:    3 * time.Second,
		MaxProcessingTime:    5 * time.Minute,
		AutoCommit:           true,
		OffsetOldest:         false,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	emailService  EmailService
	wg            sync.WaitGroup
	cancel        context.CancelFunc
}

// NewKafkaConsumer creates a new confirmation consumer group
func NewKafkaConsumer(config *ConsumerConfig, emailService EmailService) (Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.HeartbeatInterval
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	if config.AutoCommit {
		saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
		saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		emailService:  emailService,
	}, nil
}

func (kc *kafkaConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	log.Printf("📥 Starting %d confirmation workers for topics: %v", numWorkers, kc.config.Topics)

	ctx, kc.cancel = context.WithCancel(ctx)

	go kc.handleErrors()

	for i := 0; i < numWorkers; i++ {
		kc.wg.Add(1)
		go func(workerID int) {
			defer kc.wg.Done()
			kc.runWorker(ctx, workerID)
		}(i)
	}

	return nil
}

func (kc *kafkaConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &confirmationHandler{
		config:       kc.config,
		workerID:     workerID,
		emailService: kc.emailService,
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("📥 Worker %d shutting down", workerID)
			return
		default:
			if err := kc.consumerGroup.Consume(ctx, kc.config.Topics, handler); err != nil {
				log.Printf("📥 Worker %d error consuming messages: %v", workerID, err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (kc *kafkaConsumer) handleErrors() {
	for err := range kc.consumerGroup.Errors() {
		log.Printf("📥 Consumer group error: %v", err)
	}
}

func (kc *kafkaConsumer) Stop() error {
	log.Println("📥 Stopping confirmation consumer...")
	if kc.cancel != nil {
		kc.cancel()
	}
	kc.wg.Wait()

	if err := kc.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}

	log.Println("📥 Confirmation consumer stopped")
	return nil
}

type confirmationHandler struct {
	config       *ConsumerConfig
	workerID     int
	emailService EmailService
}

func (h *confirmationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Printf("📥 Worker %d: consumer group session started", h.workerID)
	return nil
}

func (h *confirmationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Printf("📥 Worker %d: consumer group session ended", h.workerID)
	return nil
}

func (h *confirmationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			if err := h.processMessage(session.Context(), message); err != nil {
				log.Printf("📥 Worker %d: error processing message: %v", h.workerID, err)
			} else {
				session.MarkMessage(message, "")
			}

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *confirmationHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var confirmation OrderConfirmation
	if err := json.Unmarshal(message.Value, &confirmation); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation: %w", err)
	}

	if err := h.sendWithRetry(ctx, &confirmation); err != nil {
		return err
	}

	log.Printf("📧 Worker %d: confirmation email sent for order %s to %s",
		h.workerID, confirmation.OrderRef, confirmation.RecipientEmail)
	return nil
}

func (h *confirmationHandler) sendWithRetry(ctx context.Context, confirmation *OrderConfirmation) error {
	backoff := h.config.RetryBackoffDuration

	for attempt := 0; attempt <= h.config.MaxRetries; attempt++ {
		err := h.emailService.SendOrderConfirmation(ctx, confirmation)
		if err == nil {
			return nil
		}

		if attempt == h.config.MaxRetries {
			return fmt.Errorf("failed after %d attempts: %w", h.config.MaxRetries, err)
		}

		delay := backoff * time.Duration(1<<attempt)
		log.Printf("📥 Worker %d: retry %d for order %s after %v", h.workerID, attempt+1, confirmation.OrderRef, delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
