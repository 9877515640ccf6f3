package reminderfired

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/rabbitmq/schema"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	err       error
	published []published
}

func (c *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestNotifyPublishesReminderFired(t *testing.T) {
	// Setup ---
	channel := &fakeChannel{}
	log := logging.NewFakeLogger()
	publisher := NewRabbitMQ(log, channel, "reminders")
	at := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	event := notification.Event{
		ID:           uuid.New(),
		Label:        "lunch",
		Title:        "Lunch time",
		ScheduledFor: at,
		FiredAt:      at.Add(time.Second),
	}

	// Exercise ---
	err := publisher.Notify(context.Background(), event)

	// Verify ---
	require.Nil(t, err)
	require.Len(t, channel.published, 1)
	p := channel.published[0]
	assert.Equal(t, "reminders", p.exchange)
	assert.Equal(t, "reminder.fired", p.key)
	assert.Equal(t, event.ID.String(), p.msg.MessageId)
	assert.Equal(t, "application/json", p.msg.ContentType)

	decoded := schema.ReminderFired{}
	require.Nil(t, decoded.Unmarshal(p.msg.Body))
	assert.Equal(t, "lunch", decoded.Label)
	assert.True(t, decoded.ScheduledFor.Equal(at))
	assert.Equal(t, 1, log.CountLevel(logging.INFO))
}

func TestNotifyReturnsPublishError(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	log := logging.NewFakeLogger()
	publisher := NewRabbitMQ(log, channel, "reminders")

	err := publisher.Notify(context.Background(), notification.Event{ID: uuid.New(), Label: "dinner"})

	assert.EqualError(t, err, "channel closed")
	assert.Equal(t, 1, log.CountLevel(logging.ERROR))
}
