package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patient *models.User, request *requests.BookAppointment) (*models.Appointment, error)
	FindAllByUser(ctx context.Context, user *models.User) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, user *models.User, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) (models.WriteResult, error)
	DeleteAppointment(ctx context.Context, appointmentID string) (models.WriteResult, error)
}
