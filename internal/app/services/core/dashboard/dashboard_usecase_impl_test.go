package dashboard

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/app/services/shared/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	c := codec.NewCodec(memory.NewMemoryStore(), "medibook_", zap.NewNop())
	userRepository := users.NewUserStorageRepository(c)
	appointmentRepository := appointments.NewAppointmentStorageRepository(c)

	for _, user := range []models.User{
		{ID: "d1", Role: models.RoleDoctor, DoctorProfile: &models.DoctorProfile{IsApproved: true}},
		{ID: "d2", Role: models.RoleDoctor, DoctorProfile: &models.DoctorProfile{}},
		{ID: "p1", Role: models.RolePatient, PatientProfile: &models.PatientProfile{}},
		{ID: "p2", Role: models.RolePatient, PatientProfile: &models.PatientProfile{}},
		{ID: "a1", Role: models.RoleAdmin},
	} {
		user := user
		require.NoError(t, userRepository.CreateUser(ctx, &user))
	}

	for _, appointment := range []models.Appointment{
		{PatientID: "p1", DoctorID: "d1", Date: "2024-03-10", Status: models.AppointmentStatusPending},
		{PatientID: "p1", DoctorID: "d1", Date: "2024-03-01", Status: models.AppointmentStatusCompleted},
		{PatientID: "p2", DoctorID: "d1", Date: "2024-03-02", Status: models.AppointmentStatusCompleted},
		{PatientID: "p2", DoctorID: "d1", Date: "2024-03-10", Status: models.AppointmentStatusCancelled},
	} {
		appointment := appointment
		_, err := appointmentRepository.CreateAppointment(ctx, &appointment)
		require.NoError(t, err)
	}

	uc := &dashboardUsecase{
		UserRepository:        userRepository,
		AppointmentRepository: appointmentRepository,
		RevenuePerAppointment: 150,
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		},
	}

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		TotalPatients:       2,
		TotalDoctors:        2,
		ApprovedDoctors:     1,
		PendingDoctors:      1,
		TotalAppointments:   4,
		PendingAppointments: 1,
		TodayAppointments:   2,
		Revenue:             300,
	}, stats)
}
