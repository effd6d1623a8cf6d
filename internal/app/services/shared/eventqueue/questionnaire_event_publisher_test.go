package eventqueue

import (
	"context"
	"errors"
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingChannel struct {
	mu        sync.Mutex
	err       error
	queues    []string
	published []amqp091.Publishing
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.queues = append(c.queues, key)
	c.published = append(c.published, msg)
	return nil
}

func TestQuestionnaireEventPublisher_Publish(t *testing.T) {
	event := &requests.QuestionnaireEvent{
		EventID:         "evt-1",
		EventType:       constvars.EventTypeQuestionnaireSubmitted,
		QuestionnaireID: "66aa01",
		Category:        asa.ASAII,
		OccurredAt:      time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC),
	}

	t.Run("Publishes Persistent JSON Message", func(t *testing.T) {
		channel := &recordingChannel{}
		publisher := &questionnaireEventPublisher{Channel: channel, Queue: "questionnaire_events", Log: zap.NewNop()}
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-9")

		require.NoError(t, publisher.Publish(ctx, event))
		require.Len(t, channel.published, 1)

		message := channel.published[0]
		assert.Equal(t, "questionnaire_events", channel.queues[0])
		assert.Equal(t, constvars.MIMEApplicationJSON, message.ContentType)
		assert.Equal(t, amqp091.Persistent, message.DeliveryMode)
		assert.Equal(t, "evt-1", message.MessageId)
		assert.Equal(t, "req-9", message.Headers["request_id"])

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(message.Body, &decoded))
		assert.Equal(t, "ASA II", decoded["asa_category"])
		assert.Equal(t, "66aa01", decoded["questionnaire_id"])
	})

	t.Run("Channel Failure", func(t *testing.T) {
		channel := &recordingChannel{err: errors.New("channel closed")}
		publisher := &questionnaireEventPublisher{Channel: channel, Queue: "questionnaire_events", Log: zap.NewNop()}

		err := publisher.Publish(context.Background(), event)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("Reopens Closed Channel", func(t *testing.T) {
		closed := &recordingChannel{err: amqp091.ErrClosed}
		fresh := &recordingChannel{}
		opened := 0
		publisher := &questionnaireEventPublisher{
			Channel: closed,
			OpenChannel: func() (publishChannel, error) {
				opened++
				return fresh, nil
			},
			Queue: "questionnaire_events",
			Log:   zap.NewNop(),
		}

		require.NoError(t, publisher.Publish(context.Background(), event))
		require.NoError(t, publisher.Publish(context.Background(), event))

		assert.Equal(t, 1, opened)
		assert.Len(t, fresh.published, 2)
		assert.Empty(t, closed.published)
	})

	t.Run("Reopen Failure", func(t *testing.T) {
		publisher := &questionnaireEventPublisher{
			Channel: &recordingChannel{err: amqp091.ErrClosed},
			OpenChannel: func() (publishChannel, error) {
				return nil, errors.New("connection closed")
			},
			Queue: "questionnaire_events",
			Log:   zap.NewNop(),
		}

		err := publisher.Publish(context.Background(), event)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("Other Errors Do Not Reopen", func(t *testing.T) {
		opened := 0
		publisher := &questionnaireEventPublisher{
			Channel: &recordingChannel{err: errors.New("no route")},
			OpenChannel: func() (publishChannel, error) {
				opened++
				return &recordingChannel{}, nil
			},
			Queue: "questionnaire_events",
			Log:   zap.NewNop(),
		}

		require.Error(t, publisher.Publish(context.Background(), event))
		assert.Zero(t, opened)
	})
}
