package notifier

import (
	"context"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type notifierService struct {
	Channel *amqp091.Channel
	Queue   string
}

var (
	notifierServiceInstance contracts.NotifierService
	onceNotifierService     sync.Once
)

func NewNotifierService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.NotifierService, error) {
	var initErr error
	onceNotifierService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		notifierServiceInstance = &notifierService{
			Channel: channel,
			Queue:   queue,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return notifierServiceInstance, nil
}

func (s *notifierService) Publish(ctx context.Context, event *requests.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrNotifierPublish(err)
	}

	return nil
}
