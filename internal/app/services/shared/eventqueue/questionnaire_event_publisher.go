package eventqueue

import (
	"context"
	"errors"
	"preop-service/internal/app/contracts"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// OpenChannel is called again when the broker has closed the current channel.
type questionnaireEventPublisher struct {
	mu          sync.Mutex
	Channel     publishChannel
	OpenChannel func() (publishChannel, error)
	Queue       string
	Log         *zap.Logger
}

func NewQuestionnaireEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.QuestionnaireEventPublisher, error) {
	openChannel := func() (publishChannel, error) {
		return rabbitMQConnection.Channel()
	}

	channel, err := openChannel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &questionnaireEventPublisher{
		Channel:     channel,
		OpenChannel: openChannel,
		Queue:       queue,
		Log:         logger,
	}, nil
}

func (p *questionnaireEventPublisher) Publish(ctx context.Context, event *requests.QuestionnaireEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.EventType,
	}
	if requestID != "" {
		headers["request_id"] = requestID
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.EventID,
		Type:         event.EventType,
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers:      headers,
	}

	p.mu.Lock()
	err = p.publish(ctx, requestID, message)
	p.mu.Unlock()
	if err != nil {
		return err
	}

	p.Log.Info("questionnaireEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.String(constvars.LoggingQuestionnaireIDKey, event.QuestionnaireID),
	)
	return nil
}

// publish retries once on a fresh channel when the current one is closed.
// Callers hold p.mu.
func (p *questionnaireEventPublisher) publish(ctx context.Context, requestID string, message amqp091.Publishing) error {
	err := p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err == nil {
		return nil
	}
	if !errors.Is(err, amqp091.ErrClosed) || p.OpenChannel == nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Warn("questionnaireEventPublisher.publish channel closed, reopening",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	channel, openErr := p.OpenChannel()
	if openErr != nil {
		return exceptions.ErrRabbitMQOpenChannel(openErr)
	}
	p.Channel = channel

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
