package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	ExchangeKind = "topic"

	// After a failed redial, Publish fails fast for this long instead of dialing again.
	reconnectBackoff = 5 * time.Second
)

var ErrPublisherClosed = errors.New("rabbitmq publisher closed")

// Publisher sends JSON events to a topic exchange. A connection or channel dropped by
// the broker is redialed on the next Publish.
type Publisher struct {
	url      string
	exchange string
	log      *logrus.Logger
	dial     func(url string) (*amqp.Connection, error)

	// amqp channels must not be shared by concurrent publishers
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	retryAt time.Time
	closed  bool
}

func NewPublisher(url, exchange string, log *logrus.Logger) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange, log: log, dial: amqp.Dial}
	if err := p.connect(); err != nil {
		return nil, err
	}

	log.Infof("Connected to RabbitMQ, exchange=%s", exchange)
	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.send(ctx, routingKey, body)
	if errors.Is(err, amqp.ErrClosed) {
		// The channel died after the liveness check; redial once.
		p.reset()
		if err = p.ensureChannel(); err == nil {
			err = p.send(ctx, routingKey, body)
		}
	}
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"exchange":    p.exchange,
		"routing_key": routingKey,
	}).Debug("Event published")
	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.reset()
}

func (p *Publisher) send(ctx context.Context, routingKey string, body []byte) error {
	return p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// ensureChannel redials when the broker has closed the connection or channel. mu must be held.
func (p *Publisher) ensureChannel() error {
	if p.channel != nil && !p.channel.IsClosed() && !p.conn.IsClosed() {
		return nil
	}
	p.reset()

	if wait := time.Until(p.retryAt); wait > 0 {
		return fmt.Errorf("rabbitmq unavailable, next reconnect in %s", wait.Round(time.Second))
	}
	if err := p.connect(); err != nil {
		p.retryAt = time.Now().Add(reconnectBackoff)
		p.log.Warnf("Failed to reconnect to RabbitMQ: %v", err)
		return err
	}

	p.log.Infof("Reconnected to RabbitMQ, exchange=%s", p.exchange)
	return nil
}

func (p *Publisher) connect() error {
	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	p.conn, p.channel = conn, ch
	go p.watch(conn.NotifyClose(make(chan *amqp.Error, 1)), ch.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

// watch logs why the broker dropped us. A graceful Close delivers no error.
func (p *Publisher) watch(connClosed, chClosed <-chan *amqp.Error) {
	select {
	case amqpErr := <-connClosed:
		if amqpErr != nil {
			p.log.WithField("code", amqpErr.Code).Warnf("RabbitMQ connection closed: %s", amqpErr.Reason)
		}
	case amqpErr := <-chClosed:
		if amqpErr != nil {
			p.log.WithField("code", amqpErr.Code).Warnf("RabbitMQ channel closed: %s", amqpErr.Reason)
		}
	}
}

// reset drops the current connection and channel. mu must be held.
func (p *Publisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
