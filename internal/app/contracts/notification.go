package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type NotificationUsecase interface {
	Notify(ctx context.Context, userID, title, message string) (*models.Notification, error)
	FindAllByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, user *models.User, notificationID string) error
}

type NotificationRepository interface {
	ListNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error)
	CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) (models.WriteResult, error)
}
