package notifications

import (
	"context"
	"log"

	"cinebook/internal/shared/config"
)

// Service bundles the producer and the consumer-side email workers behind
// one start/stop surface. When Kafka is disabled or unreachable the service
// degrades to a no-op publisher so order placement never depends on it.
type Service struct {
	producer Producer
	consumer Consumer
	enabled  bool
}

// NewService wires the notification pipeline from configuration
func NewService(kafkaCfg config.KafkaConfig, emailCfg config.EmailConfig) *Service {
	if !kafkaCfg.Enabled {
		log.Println("📭 Notifications disabled by configuration")
		return &Service{enabled: false}
	}

	emailService, err := NewSMTPEmailService(emailCfg)
	if err != nil {
		log.Printf("📭 Notifications disabled, email service failed: %v", err)
		return &Service{enabled: false}
	}

	producer, err := NewKafkaProducer(DefaultKafkaProducerConfig(kafkaCfg.Brokers, kafkaCfg.NotificationTopic))
	if err != nil {
		log.Printf("📭 Notifications disabled, Kafka unreachable: %v", err)
		return &Service{enabled: false}
	}

	consumer, err := NewKafkaConsumer(
		DefaultConsumerConfig(kafkaCfg.Brokers, kafkaCfg.ConsumerGroup, kafkaCfg.NotificationTopic),
		emailService,
	)
	if err != nil {
		log.Printf("📭 Notifications running producer-only, consumer failed: %v", err)
		return &Service{producer: producer, enabled: true}
	}

	return &Service{producer: producer, consumer: consumer, enabled: true}
}

// Start launches the confirmation workers
func (s *Service) Start(ctx context.Context, numWorkers int) error {
	if s.consumer == nil {
		return nil
	}
	return s.consumer.StartConsumers(ctx, numWorkers)
}

// PublishOrderConfirmation queues a confirmation email. Failures are logged
// and swallowed; a lost email must never fail a placed order.
func (s *Service) PublishOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) {
	if !s.enabled || s.producer == nil {
		return
	}
	if err := s.producer.PublishOrderConfirmation(ctx, confirmation); err != nil {
		log.Printf("📭 Failed to publish confirmation for order %s: %v", confirmation.OrderRef, err)
	}
}

// Stop shuts down the producer and the workers
func (s *Service) Stop() {
	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			log.Printf("📭 Error stopping consumer: %v", err)
		}
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil {
			log.Printf("📭 Error closing producer: %v", err)
		}
	}
}
