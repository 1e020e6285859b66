// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"ai-interview-prep-service/internal/observability/metrics"
	"ai-interview-prep-service/internal/schema"
)

// Publisher publishes result events to separate Kafka topics for the
// interview and resume flows. When Kafka is disabled it degrades to a
// log-only mode so the serving path never depends on a broker.
type Publisher struct {
	writerInterview *kafka.Writer
	writerResume    *kafka.Writer
	principal       string
	topicInterview  string
	topicResume     string
	enabled         bool
	metrics         *metrics.Metrics
	validator       *schema.Validator
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers        []string
	TopicInterview string
	TopicResume    string
	Principal      string
	Enabled        bool
}

// New creates a new Kafka event publisher with separate topics for
// interview results and resume results.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled:   false,
			metrics:   m,
			validator: schema.New(),
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:      cfg.Principal,
			topicInterview: cfg.TopicInterview,
			topicResume:    cfg.TopicResume,
			enabled:        false,
			metrics:        m,
			validator:      schema.New(),
		}
	}

	// Longer dial timeout so DNS resolution inside Kubernetes does not
	// trip the default.
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerInterview := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicInterview,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	writerResume := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicResume,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicInterview", cfg.TopicInterview).
		Str("topicResume", cfg.TopicResume).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerInterview: writerInterview,
		writerResume:    writerResume,
		principal:       cfg.Principal,
		topicInterview:  cfg.TopicInterview,
		topicResume:     cfg.TopicResume,
		enabled:         true,
		metrics:         m,
		validator:       schema.New(),
	}
}

// PublishInterview publishes an answer-analyzed event to the interview topic.
func (p *Publisher) PublishInterview(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerInterview, p.topicInterview, "interview", key, event)
}

// PublishResume publishes a resume-optimized event to the resume topic.
func (p *Publisher) PublishResume(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerResume, p.topicResume, "resume", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	if err := p.validator.Validate(payload); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Event failed validation")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerInterview != nil {
		if e := p.writerInterview.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing interview writer")
			err = e
		}
	}
	if p.writerResume != nil {
		if e := p.writerResume.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing resume writer")
			err = e
		}
	}
	return err
}
