package notifier

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	rabbitMQNotifierInstance contracts.EventNotifier
	onceRabbitMQNotifier     sync.Once
)

type rabbitMQNotifier struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
	mu        sync.Mutex
}

// eventEnvelope is the wire shape of every published event.
type eventEnvelope struct {
	ID         string      `json:"id"`
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

func NewRabbitMQNotifier(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.EventNotifier, error) {
	var initErr error
	onceRabbitMQNotifier.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = exceptions.ErrNotifierPublish(err)
			return
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
			initErr = exceptions.ErrNotifierPublish(err)
			return
		}
		rabbitMQNotifierInstance = &rabbitMQNotifier{
			channel:   ch,
			queueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return rabbitMQNotifierInstance, nil
}

func (n *rabbitMQNotifier) Publish(ctx context.Context, event string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	envelope := eventEnvelope{
		ID:         utils.GenerateEntityID(),
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    envelope.ID,
		Timestamp:    envelope.OccurredAt,
		Body:         body,
	}

	n.mu.Lock()
	err = n.channel.PublishWithContext(ctx, "", n.queueName, false, false, msg)
	n.mu.Unlock()
	if err != nil {
		n.Log.Error("rabbitMQNotifier.Publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
		return exceptions.ErrNotifierPublish(err)
	}

	n.Log.Info("rabbitMQNotifier.Publish event published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event),
	)
	return nil
}

// NoopNotifier satisfies EventNotifier when messaging is disabled.
type NoopNotifier struct{}

func (NoopNotifier) Publish(_ context.Context, _ string, _ interface{}) error { return nil }
