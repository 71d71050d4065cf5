package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"hotel-booking/logger"
)

const QueueName = "hotel.activity"

// AMQPPublisher keeps one connection and channel open for the process
// lifetime. The channel is guarded so concurrent handlers publish in turn.
// Once the broker drops the channel, later events are discarded without
// further warnings.
type AMQPPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	dropped atomic.Bool
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open: %w", err)
	}

	if _, err := ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	p := &AMQPPublisher{conn: conn, channel: ch, queue: QueueName}
	go p.watch(ch.NotifyClose(make(chan *amqp.Error, 1)))
	return p, nil
}

// watch marks the publisher dropped when the broker closes the channel. A
// close we asked for arrives as a closed notify channel with no error.
func (p *AMQPPublisher) watch(closed <-chan *amqp.Error) {
	err, ok := <-closed
	if !ok || err == nil {
		return
	}
	p.dropped.Store(true)
	logger.WarnLogger.Warnf("events: broker closed the channel, dropping further events: %v", err)
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) {
	if p.dropped.Load() {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		logger.WarnLogger.Warnf("events: marshal %v failed: %v", event.Type, err)
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		logger.WarnLogger.Warnf("events: publish %v failed: %v", event.Type, err)
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.dropped.Load() {
		if err := p.channel.Close(); err != nil {
			logger.WarnLogger.Warnf("events: channel close: %v", err)
		}
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	return nil
}

// New returns a broker-backed publisher when url is set and a no-op one
// otherwise.
func New(url string) (Publisher, error) {
	if url == "" {
		return Noop{}, nil
	}
	return NewAMQPPublisher(url)
}
