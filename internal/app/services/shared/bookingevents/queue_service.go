package bookingevents

import (
	"context"
	"sync"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes appointment lifecycle events to a durable queue. The
// notification worker on the other side mails clients and lawyers; losing a
// message degrades notifications only, never bookings.
type Service struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

var _ contracts.EventPublisher = (*Service)(nil)

func (s *Service) Publish(ctx context.Context, event *contracts.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.ch.PublishWithContext(ctx,
		"",          // default exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Debug("bookingevents.Publish message enqueued",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("event", event.Event),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
