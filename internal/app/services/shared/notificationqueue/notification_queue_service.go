package notificationqueue

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationEvent is the payload published for every stored notification.
type NotificationEvent struct {
	Type         string               `json:"type"`
	Notification *models.Notification `json:"notification"`
}

const eventTypeNotificationCreated = "notification.created"

// confirmation is satisfied by *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishFunc func(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)

// rabbitMQPublisher waits on the confirmation of its own message, so a
// confirm that arrives after a caller gave up is never read by a later
// publish.
type rabbitMQPublisher struct {
	publish   publishFunc
	queueName string
	log       *zap.Logger
}

// NewRabbitMQPublisher declares the durable notification queue, enables
// publisher confirms and returns a publisher bound to it.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.NotificationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	err = ch.Confirm(false)
	if err != nil {
		return nil, err
	}

	publish := func(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
		deferred, err := ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
		if err != nil {
			return nil, err
		}
		if deferred == nil {
			return nil, errors.New("channel is not in confirm mode")
		}
		return deferred, nil
	}
	return newRabbitMQPublisher(publish, queueName, log), nil
}

func newRabbitMQPublisher(publish publishFunc, queueName string, log *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		publish:   publish,
		queueName: queueName,
		log:       log,
	}
}

func (p *rabbitMQPublisher) PublishNotification(ctx context.Context, notification *models.Notification) error {
	body, err := json.Marshal(NotificationEvent{
		Type:         eventTypeNotificationCreated,
		Notification: notification,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	confirmed, err := p.publish(ctx, constvars.NotificationEventExchange, p.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	acked, err := confirmed.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), p.queueName)
	}

	p.log.Debug("notificationqueue.PublishNotification published",
		zap.String(constvars.LoggingNotificationKey, notification.ID),
		zap.String(constvars.LoggingUserIDKey, notification.UserID),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() contracts.NotificationPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishNotification(ctx context.Context, notification *models.Notification) error {
	return nil
}
