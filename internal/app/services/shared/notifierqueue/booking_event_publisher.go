package notifierqueue

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/goccy/go-json"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
)

// Publisher pushes booking lifecycle events to a durable RabbitMQ queue so
// downstream consumers (notifications, sync jobs) pick them up out of band.
type Publisher struct {
	ch       *amqp.Channel
	log      *zap.Logger
	queue    string
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewPublisher declares the durable queue and enables publisher confirms.
func NewPublisher(conn *amqp.Connection, log *zap.Logger, queue string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Publisher{
		ch:       ch,
		log:      log,
		queue:    queue,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// Publish sends the event with persistence and waits for the broker confirm.
func (p *Publisher) Publish(ctx context.Context, message contracts.BookingEventMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queue)
	}

	p.log.Info("booking event published",
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String("event", message.Event),
		zap.String(constvars.LoggingBookingIDKey, message.BookingID),
	)
	return nil
}
