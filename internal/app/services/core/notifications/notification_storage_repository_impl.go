package notifications

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"time"
)

type NotificationStorageRepository struct {
	Codec *codec.Codec
	Now   func() time.Time
}

func NewNotificationStorageRepository(c *codec.Codec) contracts.NotificationRepository {
	return &NotificationStorageRepository{
		Codec: c,
		Now:   time.Now,
	}
}

func (repo *NotificationStorageRepository) listNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications, err := codec.ReadOrDefault(ctx, repo.Codec, constvars.StorageKeyNotifications, []models.Notification{})
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (repo *NotificationStorageRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := repo.listNotifications(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Notification, 0)
	for _, notification := range notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result, nil
}

// CreateNotification assigns id and createdAt and stores the notification
// unread.
func (repo *NotificationStorageRepository) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	created := *notification
	created.ID = utils.GenerateID()
	created.CreatedAt = utils.Timestamp(repo.Now())
	created.IsRead = false

	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyNotifications, []models.Notification{}, func(notifications []models.Notification) ([]models.Notification, bool, error) {
		return append(notifications, created), true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (repo *NotificationStorageRepository) MarkNotificationRead(ctx context.Context, notificationID string) (models.WriteResult, error) {
	result := models.WriteNotFound
	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyNotifications, []models.Notification{}, func(notifications []models.Notification) ([]models.Notification, bool, error) {
		for i := range notifications {
			if notifications[i].ID == notificationID {
				notifications[i].IsRead = true
				result = models.WriteApplied
				return notifications, true, nil
			}
		}
		return nil, false, nil
	})
	if err != nil {
		return models.WriteNotFound, err
	}
	return result, nil
}
