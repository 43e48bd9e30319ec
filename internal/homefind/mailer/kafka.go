package mailer

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// KafkaConfig carries producer settings for the queue-backed driver.
type KafkaConfig struct {
	Broker string
	Topic  string

	// Username/Password enable SASL PLAIN over TLS when set.
	Username string
	Password string
}

// mailEvent is the message published for the external mail worker.
type mailEvent struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// KafkaMailer publishes mail events to a topic instead of talking SMTP
// itself. An external worker consumes the topic and performs delivery.
type KafkaMailer struct {
	writer *kafka.Writer
}

func NewKafkaMailer(cfg KafkaConfig) *KafkaMailer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: cfg.Username,
				Password: cfg.Password,
			},
			TLS: &tls.Config{},
		}
	}
	return &KafkaMailer{writer: writer}
}

func (m *KafkaMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(mailEvent{
		To:      to,
		Subject: subject,
		Body:    htmlBody,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal mail event: %w", err)
	}

	err = m.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(to),
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish mail event: %w", err)
	}
	return nil
}

// Close flushes and shuts down the underlying producer.
func (m *KafkaMailer) Close() error {
	return m.writer.Close()
}
