package notifications

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Publisher              contracts.NotificationPublisher
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	publisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		Publisher:              publisher,
		Log:                    logger,
	}
}

// Notify stores a notification for userID and then publishes it. A failed
// publish is logged only, the stored notification stays the source of truth.
func (uc *notificationUsecase) Notify(ctx context.Context, userID, title, message string) (*models.Notification, error) {
	requestID := utils.GetRequestID(ctx)

	notification, err := uc.NotificationRepository.CreateNotification(ctx, &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
	if err != nil {
		uc.Log.Error("notificationUsecase.Notify error storing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.Publisher.PublishNotification(ctx, notification)
	if err != nil {
		uc.Log.Warn("notificationUsecase.Notify error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationKey, notification.ID),
			zap.Error(err),
		)
	}
	return notification, nil
}

func (uc *notificationUsecase) FindAllByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return uc.NotificationRepository.ListNotificationsByUser(ctx, userID)
}

// MarkAsRead only touches notifications addressed to user.
func (uc *notificationUsecase) MarkAsRead(ctx context.Context, user *models.User, notificationID string) error {
	owned, err := uc.NotificationRepository.ListNotificationsByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	found := false
	for _, notification := range owned {
		if notification.ID == notificationID {
			found = true
			break
		}
	}
	if !found {
		return exceptions.ErrRecordNotFound(nil, constvars.ResourceNotification, notificationID)
	}

	result, err := uc.NotificationRepository.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		return err
	}
	if !result.Applied() {
		return exceptions.ErrRecordNotFound(nil, constvars.ResourceNotification, notificationID)
	}
	return nil
}
