package listreminderdeliveries

import (
	"context"
	"errors"
	"testing"

	c "nutritrack/internal/core/domain/common"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	cases := []struct {
		id       string
		input    Input
		expected reminder.DeliveryReadOptions
	}{
		{
			id:       "default limit",
			input:    Input{},
			expected: reminder.DeliveryReadOptions{Limit: c.NewOptional(DefaultLimit, true)},
		},
		{
			id:    "label and offset",
			input: Input{Label: c.NewOptional("lunch", true), Limit: c.NewOptional(uint(10), true), Offset: 20},
			expected: reminder.DeliveryReadOptions{
				LabelEquals: c.NewOptional("lunch", true),
				Limit:       c.NewOptional(uint(10), true),
				Offset:      20,
			},
		},
		{
			id:       "limit is capped",
			input:    Input{Limit: c.NewOptional(uint(10_000), true)},
			expected: reminder.DeliveryReadOptions{Limit: c.NewOptional(MaxLimit, true)},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			repo := reminder.NewFakeDeliveryRepository()

			_, err := New(logging.NewFakeLogger(), repo).Run(context.Background(), testcase.input)

			require.Nil(t, err)
			require.Len(t, repo.ReadWith, 1)
			assert.Equal(t, testcase.expected, repo.ReadWith[0])
		})
	}
}

func TestFiltersByLabel(t *testing.T) {
	repo := reminder.NewFakeDeliveryRepository()
	for _, label := range []string{"lunch", "dinner", "lunch"} {
		_, err := repo.Create(context.Background(), reminder.Delivery{ID: uuid.New(), Label: label})
		require.Nil(t, err)
	}

	result, err := New(logging.NewFakeLogger(), repo).Run(
		context.Background(),
		Input{Label: c.NewOptional("lunch", true)},
	)

	require.Nil(t, err)
	assert.Len(t, result.Deliveries, 2)
}

func TestRepositoryError(t *testing.T) {
	repo := reminder.NewFakeDeliveryRepository()
	repo.ReadError = errors.New("db is down")

	_, err := New(logging.NewFakeLogger(), repo).Run(context.Background(), Input{})

	assert.EqualError(t, err, "db is down")
}
