package dashboard

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/utils"
	"time"
)

type dashboardUsecase struct {
	UserRepository        contracts.UserRepository
	AppointmentRepository contracts.AppointmentRepository
	RevenuePerAppointment float64
	Now                   func() time.Time
}

func NewDashboardUsecase(
	userRepository contracts.UserRepository,
	appointmentRepository contracts.AppointmentRepository,
	revenuePerAppointment float64,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		UserRepository:        userRepository,
		AppointmentRepository: appointmentRepository,
		RevenuePerAppointment: revenuePerAppointment,
		Now:                   time.Now,
	}
}

// GetStats counts over the stored collections. Revenue is a flat amount per
// completed appointment, not the doctors' fees.
func (uc *dashboardUsecase) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	users, err := uc.UserRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.AppointmentRepository.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	stats := new(models.DashboardStats)
	for i := range users {
		switch {
		case users[i].IsPatient():
			stats.TotalPatients++
		case users[i].IsApprovedDoctor():
			stats.TotalDoctors++
			stats.ApprovedDoctors++
		case users[i].IsDoctor():
			stats.TotalDoctors++
			stats.PendingDoctors++
		}
	}

	today := utils.CalendarDate(uc.Now())
	completed := 0
	for _, appointment := range appointments {
		stats.TotalAppointments++
		if appointment.Status == models.AppointmentStatusPending {
			stats.PendingAppointments++
		}
		if appointment.Status == models.AppointmentStatusCompleted {
			completed++
		}
		if appointment.Date == today {
			stats.TodayAppointments++
		}
	}
	stats.Revenue = float64(completed) * uc.RevenuePerAppointment

	return stats, nil
}
