package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/metrics"
)

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// AMQPConfig holds the broker connection settings.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// AMQPPublisher publishes JSON events to a durable topic exchange.
// It keeps one connection and channel open and reopens them after a broker disconnect.
type AMQPPublisher struct {
	cfg  AMQPConfig
	dial func(url string) (*amqp.Connection, error)

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewAMQPPublisher connects to the broker and declares the exchange.
func NewAMQPPublisher(cfg AMQPConfig) (*AMQPPublisher, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	p := &AMQPPublisher{cfg: cfg, dial: amqp.Dial}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) connectLocked() error {
	conn, err := p.dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		p.cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("amqp exchange declare: %w", err)
	}
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if p.conn != nil && !p.conn.IsClosed() {
			_ = p.conn.Close()
		}
		log.Warn().Str("exchange", p.cfg.Exchange).Msg("Reconnecting to message broker")
		if err := p.connectLocked(); err != nil {
			return nil, err
		}
	}
	return p.ch, nil
}

// Publish marshals body to JSON and publishes it as a persistent message.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		metrics.RecordEventPublished(routingKey, "error")
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.channel()
	if err != nil {
		metrics.RecordEventPublished(routingKey, "error")
		return err
	}

	msg := newPublishing(ctx, routingKey, payload)
	if err := ch.PublishWithContext(ctx, p.cfg.Exchange, routingKey, false, false, msg); err != nil {
		metrics.RecordEventPublished(routingKey, "error")
		return fmt.Errorf("amqp publish %s: %w", routingKey, err)
	}

	metrics.RecordEventPublished(routingKey, "success")
	return nil
}

// newPublishing builds a persistent message. The request ID, when present, becomes the correlation id.
func newPublishing(ctx context.Context, routingKey string, payload []byte) amqp.Publishing {
	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: logger.RequestIDFromContext(ctx),
		Timestamp:     time.Now().UTC(),
		Type:          routingKey,
		Body:          payload,
	}
}

// Close closes the channel and connection. Further publishes fail.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
