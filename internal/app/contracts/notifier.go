package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/dto/requests"
)

// NotifierService publishes scheduling events to the notification queue.
// Publishing is best-effort: a failure is logged by the caller and never
// fails the triggering operation.
type NotifierService interface {
	Publish(ctx context.Context, event *requests.NotificationEvent) error
}
