package reminderfired

import (
	"context"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ publishes every fired reminder to a topic exchange so that other
// services can react to it.
type RabbitMQ struct {
	log      logging.Logger
	channel  publisher
	exchange string
}

func NewRabbitMQ(log logging.Logger, channel publisher, exchange string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange}
}

func (p *RabbitMQ) Notify(ctx context.Context, event notification.Event) error {
	msg := schema.NewReminderFired(event)
	body, err := msg.Marshal()
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, schema.RoutingKeyReminderFired, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.ID,
		Timestamp:    event.FiredAt,
		Type:         schema.RoutingKeyReminderFired,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("eventID", msg.ID))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", schema.RoutingKeyReminderFired),
		logging.Entry("eventID", msg.ID),
	)
	return nil
}
