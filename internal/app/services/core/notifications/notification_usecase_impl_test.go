package notifications

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/app/services/shared/memory"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	published []*models.Notification
	err       error
}

func (f *fakePublisher) PublishNotification(ctx context.Context, notification *models.Notification) error {
	f.published = append(f.published, notification)
	return f.err
}

func newTestUsecase(publishErr error) (*NotificationStorageRepository, *fakePublisher, *notificationUsecase) {
	repo := &NotificationStorageRepository{
		Codec: codec.NewCodec(memory.NewMemoryStore(), "medibook_", zap.NewNop()),
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		},
	}
	publisher := &fakePublisher{err: publishErr}
	return repo, publisher, &notificationUsecase{
		NotificationRepository: repo,
		Publisher:              publisher,
		Log:                    zap.NewNop(),
	}
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores unread and publishes", func(t *testing.T) {
		repo, publisher, uc := newTestUsecase(nil)

		notification, err := uc.Notify(ctx, "u1", "Hello", "World")
		require.NoError(t, err)
		assert.NotEmpty(t, notification.ID)
		assert.Equal(t, "2024-03-10T09:00:00Z", notification.CreatedAt)
		assert.False(t, notification.IsRead)
		assert.Len(t, publisher.published, 1)

		stored, err := repo.ListNotificationsByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []models.Notification{*notification}, stored)
	})

	t.Run("Publish failure keeps the stored notification", func(t *testing.T) {
		repo, _, uc := newTestUsecase(errors.New("broker down"))

		notification, err := uc.Notify(ctx, "u1", "Hello", "World")
		require.NoError(t, err)

		stored, err := repo.ListNotificationsByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []models.Notification{*notification}, stored)
	})

	t.Run("Listing filters by user", func(t *testing.T) {
		repo, _, uc := newTestUsecase(nil)
		_, err := uc.Notify(ctx, "u1", "a", "a")
		require.NoError(t, err)
		_, err = uc.Notify(ctx, "u2", "b", "b")
		require.NoError(t, err)

		stored, err := repo.ListNotificationsByUser(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "b", stored[0].Title)

		stored, err = repo.ListNotificationsByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestMarkAsRead(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: "u1"}
	stranger := &models.User{ID: "u2"}

	t.Run("Owner marks as read", func(t *testing.T) {
		repo, _, uc := newTestUsecase(nil)
		notification, err := uc.Notify(ctx, owner.ID, "Hello", "World")
		require.NoError(t, err)

		require.NoError(t, uc.MarkAsRead(ctx, owner, notification.ID))

		stored, err := repo.ListNotificationsByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.True(t, stored[0].IsRead)
	})

	t.Run("Other users cannot mark it", func(t *testing.T) {
		repo, _, uc := newTestUsecase(nil)
		notification, err := uc.Notify(ctx, owner.ID, "Hello", "World")
		require.NoError(t, err)

		assert.Error(t, uc.MarkAsRead(ctx, stranger, notification.ID))

		stored, err := repo.ListNotificationsByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.False(t, stored[0].IsRead)
	})

	t.Run("Repository reports a miss", func(t *testing.T) {
		repo, _, _ := newTestUsecase(nil)

		result, err := repo.MarkNotificationRead(ctx, "missing")
		require.NoError(t, err)
		assert.Equal(t, models.WriteNotFound, result)
	})
}

func TestConcurrentNotificationWrites(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newTestUsecase(nil)

	first, err := repo.CreateNotification(ctx, &models.Notification{UserID: "u1", Title: "First"})
	require.NoError(t, err)

	const writers = 30
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateNotification(ctx, &models.Notification{UserID: "u1", Title: "More"})
			assert.NoError(t, err)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := repo.MarkNotificationRead(ctx, first.ID)
		assert.NoError(t, err)
		assert.True(t, result.Applied())
	}()
	wg.Wait()

	stored, err := repo.ListNotificationsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, stored, writers+1)
	assert.True(t, stored[0].IsRead)
}
