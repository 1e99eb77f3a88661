package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type NotificationPublisher interface {
	PublishNotification(ctx context.Context, notification *models.Notification) error
}
