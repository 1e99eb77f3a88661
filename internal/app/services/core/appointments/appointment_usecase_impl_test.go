package appointments

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/app/services/shared/memory"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotificationUsecase struct {
	mu         sync.Mutex
	recipients []string
	err        error
}

func (f *fakeNotificationUsecase) Notify(ctx context.Context, userID, title, message string) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.recipients = append(f.recipients, userID)
	return &models.Notification{UserID: userID, Title: title, Message: message}, nil
}

func (f *fakeNotificationUsecase) FindAllByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationUsecase) MarkAsRead(ctx context.Context, user *models.User, notificationID string) error {
	return nil
}

var (
	testPatient = models.User{
		ID:             "p1",
		Email:          "alice@x.com",
		Name:           "Alice",
		Role:           models.RolePatient,
		PatientProfile: &models.PatientProfile{},
	}
	otherPatient = models.User{
		ID:             "p2",
		Email:          "carol@x.com",
		Name:           "Carol",
		Role:           models.RolePatient,
		PatientProfile: &models.PatientProfile{},
	}
	testDoctor = models.User{
		ID:            "d1",
		Email:         "sarah@clinic.test",
		Name:          "Dr. Sarah Johnson",
		Role:          models.RoleDoctor,
		DoctorProfile: &models.DoctorProfile{Specialization: "Cardiology", IsApproved: true},
	}
	pendingDoctor = models.User{
		ID:            "d2",
		Email:         "new@clinic.test",
		Name:          "Dr. New",
		Role:          models.RoleDoctor,
		DoctorProfile: &models.DoctorProfile{Specialization: "Neurology"},
	}
	testAdmin = models.User{ID: "a1", Email: "admin@medibook.test", Name: "Admin", Role: models.RoleAdmin}
)

func newTestUsecase(t *testing.T) (*AppointmentStorageRepository, *fakeNotificationUsecase, *appointmentUsecase) {
	c := codec.NewCodec(memory.NewMemoryStore(), "medibook_", zap.NewNop())
	userRepository := users.NewUserStorageRepository(c)
	for _, user := range []models.User{testPatient, otherPatient, testDoctor, pendingDoctor, testAdmin} {
		user := user
		require.NoError(t, userRepository.CreateUser(context.Background(), &user))
	}

	repo := &AppointmentStorageRepository{
		Codec: c,
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		},
	}
	notifier := &fakeNotificationUsecase{}
	return repo, notifier, &appointmentUsecase{
		AppointmentRepository: repo,
		UserRepository:        userRepository,
		NotificationUsecase:   notifier,
		Log:                   zap.NewNop(),
	}
}

func book(t *testing.T, uc *appointmentUsecase) *models.Appointment {
	appointment, err := uc.BookAppointment(context.Background(), &testPatient, &requests.BookAppointment{
		DoctorID: testDoctor.ID,
		Date:     "2024-03-12",
		Time:     "10:00 AM",
	})
	require.NoError(t, err)
	return appointment
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Booking starts pending with snapshots and default reason", func(t *testing.T) {
		repo, notifier, uc := newTestUsecase(t)

		appointment := book(t, uc)

		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, "Alice", appointment.PatientName)
		assert.Equal(t, "Dr. Sarah Johnson", appointment.DoctorName)
		assert.Equal(t, constvars.DefaultAppointmentReason, appointment.Reason)
		assert.Equal(t, "2024-03-10T09:00:00Z", appointment.CreatedAt)
		assert.Equal(t, []string{testDoctor.ID}, notifier.recipients)

		stored, err := repo.FindAppointmentByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, appointment, stored)
	})

	t.Run("Booking stands when the notification fails", func(t *testing.T) {
		repo, notifier, uc := newTestUsecase(t)
		notifier.err = errors.New("notifications slot unavailable")

		appointment := book(t, uc)

		stored, err := repo.FindAppointmentByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, appointment, stored)

		all, err := repo.ListAppointments(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Concurrent bookings are all stored", func(t *testing.T) {
		repo, notifier, uc := newTestUsecase(t)
		const bookings = 50

		var wg sync.WaitGroup
		for i := 0; i < bookings; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.BookAppointment(ctx, &testPatient, &requests.BookAppointment{DoctorID: testDoctor.ID, Date: "2024-03-12", Time: "10:00 AM"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		all, err := repo.ListAppointments(ctx)
		require.NoError(t, err)
		assert.Len(t, all, bookings)
		assert.Len(t, notifier.recipients, bookings)
	})

	t.Run("Unapproved doctors cannot be booked", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)

		_, err := uc.BookAppointment(ctx, &testPatient, &requests.BookAppointment{DoctorID: pendingDoctor.ID, Date: "2024-03-12", Time: "10:00 AM"})
		assert.True(t, errors.Is(err, exceptions.ErrDoctorNotApproved(nil, pendingDoctor.ID)))
	})

	t.Run("Unknown doctor is not found", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)

		_, err := uc.BookAppointment(ctx, &testPatient, &requests.BookAppointment{DoctorID: "missing", Date: "2024-03-12", Time: "10:00 AM"})
		assert.True(t, errors.Is(err, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, "missing")))
	})

	t.Run("Only patients book", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)

		_, err := uc.BookAppointment(ctx, &testDoctor, &requests.BookAppointment{DoctorID: testDoctor.ID, Date: "2024-03-12", Time: "10:00 AM"})
		assert.True(t, errors.Is(err, exceptions.ErrNotMatchRoleType(nil)))
	})
}

func TestAppointmentStatusScenario(t *testing.T) {
	ctx := context.Background()
	repo, notifier, uc := newTestUsecase(t)
	appointment := book(t, uc)

	confirmed, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, confirmed.Status)

	completed, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{
		Status:       "completed",
		Notes:        "Blood pressure normal",
		Prescription: "Rest",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCompleted, completed.Status)

	_, err = uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "pending"})
	assert.True(t, errors.Is(err, exceptions.ErrInvalidStatusTransition(nil, appointment.ID, "completed", "pending")))

	stored, err := repo.FindAppointmentByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCompleted, stored.Status)
	assert.Equal(t, "Blood pressure normal", stored.Notes)
	assert.Equal(t, "Rest", stored.Prescription)

	// booking, confirm and complete
	assert.Equal(t, []string{testDoctor.ID, testPatient.ID, testPatient.ID}, notifier.recipients)
}

func TestUpdateStatusPermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient cancels own pending appointment and the doctor is told", func(t *testing.T) {
		_, notifier, uc := newTestUsecase(t)
		appointment := book(t, uc)

		result, err := uc.UpdateStatus(ctx, &testPatient, appointment.ID, &requests.UpdateAppointmentStatus{Status: "cancelled", Notes: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, result.Status)
		assert.Empty(t, result.Notes)
		assert.Equal(t, []string{testDoctor.ID, testDoctor.ID}, notifier.recipients)
	})

	t.Run("Patient cannot confirm", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)
		appointment := book(t, uc)

		_, err := uc.UpdateStatus(ctx, &testPatient, appointment.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.True(t, errors.Is(err, exceptions.ErrNotMatchRoleType(nil)))
	})

	t.Run("Other patients cannot cancel", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)
		appointment := book(t, uc)

		_, err := uc.UpdateStatus(ctx, &otherPatient, appointment.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
		assert.True(t, errors.Is(err, exceptions.ErrNotMatchRoleType(nil)))
	})

	t.Run("Cancelled is terminal", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)
		appointment := book(t, uc)

		_, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
		require.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, &testAdmin, appointment.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.True(t, errors.Is(err, exceptions.ErrInvalidStatusTransition(nil, appointment.ID, "cancelled", "confirmed")))
	})

	t.Run("Pending cannot jump to completed", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)
		appointment := book(t, uc)

		_, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "completed"})
		assert.True(t, errors.Is(err, exceptions.ErrInvalidStatusTransition(nil, appointment.ID, "pending", "completed")))
	})

	t.Run("Same status edit keeps notes and sends nothing", func(t *testing.T) {
		_, notifier, uc := newTestUsecase(t)
		appointment := book(t, uc)

		result, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "pending", Notes: "Fasting required"})
		require.NoError(t, err)
		assert.Equal(t, "Fasting required", result.Notes)
		assert.Equal(t, []string{testDoctor.ID}, notifier.recipients)
	})

	t.Run("Status change stands when the notification fails", func(t *testing.T) {
		repo, notifier, uc := newTestUsecase(t)
		appointment := book(t, uc)
		notifier.err = errors.New("notifications slot unavailable")

		result, err := uc.UpdateStatus(ctx, &testDoctor, appointment.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, result.Status)

		stored, err := repo.FindAppointmentByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, stored.Status)
	})

	t.Run("Unknown appointment is not found", func(t *testing.T) {
		_, _, uc := newTestUsecase(t)

		_, err := uc.UpdateStatus(ctx, &testAdmin, "missing", &requests.UpdateAppointmentStatus{Status: "cancelled"})
		assert.True(t, errors.Is(err, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, "missing")))
	})
}

func TestFindAllByUserAndDelete(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newTestUsecase(t)
	appointment := book(t, uc)

	mine, err := uc.FindAllByUser(ctx, &testPatient)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	mine, err = uc.FindAllByUser(ctx, &otherPatient)
	require.NoError(t, err)
	assert.Empty(t, mine)

	mine, err = uc.FindAllByUser(ctx, &testDoctor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := uc.FindAllByUser(ctx, &testAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.DeleteAppointment(ctx, appointment.ID))
	all, err = uc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = uc.DeleteAppointment(ctx, appointment.ID)
	assert.True(t, errors.Is(err, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, appointment.ID)))
}
