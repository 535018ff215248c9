package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

type Publisher interface {
	PublishQuizStarted(ctx context.Context, evt QuizStartedEvent) error
	PublishQuizCompleted(ctx context.Context, evt QuizCompletedEvent) error
	Close() error
}

// EventPublisher sends JSON envelopes to a topic exchange. With no broker URL
// it stays disabled and every publish is a no-op.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	enabled  bool
}

func NewEventPublisher(url, exchange string) (*EventPublisher, error) {
	if url == "" {
		log.Warn().Msg("RabbitMQ URL is empty, event publishing is disabled")
		return &EventPublisher{exchange: exchange}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Info().Str("exchange", exchange).Msg("Event publisher connected")
	return &EventPublisher{conn: conn, channel: channel, exchange: exchange, enabled: true}, nil
}

func (p *EventPublisher) Enabled() bool { return p.enabled }

func (p *EventPublisher) publish(ctx context.Context, t EventType, payload any) error {
	if !p.enabled {
		log.Debug().Str("event", string(t)).Msg("Event publishing disabled, skipping")
		return nil
	}

	body, err := json.Marshal(NewEnvelope(t, payload))
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", t, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		pubCtx,
		p.exchange,
		string(t), // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", t, err)
	}
	log.Debug().Str("event", string(t)).Msg("Published event")
	return nil
}

func (p *EventPublisher) PublishQuizStarted(ctx context.Context, evt QuizStartedEvent) error {
	return p.publish(ctx, EventTypeQuizStarted, evt)
}

func (p *EventPublisher) PublishQuizCompleted(ctx context.Context, evt QuizCompletedEvent) error {
	return p.publish(ctx, EventTypeQuizCompleted, evt)
}

func (p *EventPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing RabbitMQ channel")
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}
	return nil
}
