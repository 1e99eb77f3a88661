package appointments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"
)

type AppointmentStorageRepository struct {
	Codec *codec.Codec
	Now   func() time.Time
}

func NewAppointmentStorageRepository(c *codec.Codec) contracts.AppointmentRepository {
	return &AppointmentStorageRepository{
		Codec: c,
		Now:   time.Now,
	}
}

func (repo *AppointmentStorageRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := codec.ReadOrDefault(ctx, repo.Codec, constvars.StorageKeyAppointments, []models.Appointment{})
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

func (repo *AppointmentStorageRepository) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.filter(ctx, func(appointment *models.Appointment) bool {
		return appointment.PatientID == patientID
	})
}

func (repo *AppointmentStorageRepository) ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return repo.filter(ctx, func(appointment *models.Appointment) bool {
		return appointment.DoctorID == doctorID
	})
}

func (repo *AppointmentStorageRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointments, err := repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		if appointments[i].ID == appointmentID {
			return &appointments[i], nil
		}
	}
	return nil, nil
}

// CreateAppointment assigns id and createdAt. An empty status starts the
// appointment as pending.
func (repo *AppointmentStorageRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	created := *appointment
	created.ID = utils.GenerateID()
	created.CreatedAt = utils.Timestamp(repo.Now())
	if created.Status == "" {
		created.Status = models.AppointmentStatusPending
	}

	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyAppointments, []models.Appointment{}, func(appointments []models.Appointment) ([]models.Appointment, bool, error) {
		return append(appointments, created), true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAppointment replaces the stored record with the same id. The status
// change from the stored record must be a legal transition, otherwise
// nothing is written. The check and the write happen under one slot lock.
func (repo *AppointmentStorageRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (models.WriteResult, error) {
	result := models.WriteNotFound
	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyAppointments, []models.Appointment{}, func(appointments []models.Appointment) ([]models.Appointment, bool, error) {
		for i := range appointments {
			if appointments[i].ID != appointment.ID {
				continue
			}

			from := appointments[i].Status
			if !from.CanTransitionTo(appointment.Status) {
				return nil, false, exceptions.ErrInvalidStatusTransition(nil, appointment.ID, string(from), string(appointment.Status))
			}

			appointments[i] = *appointment
			result = models.WriteApplied
			return appointments, true, nil
		}
		return nil, false, nil
	})
	if err != nil {
		return models.WriteNotFound, err
	}
	return result, nil
}

func (repo *AppointmentStorageRepository) DeleteAppointment(ctx context.Context, appointmentID string) (models.WriteResult, error) {
	result := models.WriteNotFound
	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyAppointments, []models.Appointment{}, func(appointments []models.Appointment) ([]models.Appointment, bool, error) {
		remaining := make([]models.Appointment, 0, len(appointments))
		for _, appointment := range appointments {
			if appointment.ID != appointmentID {
				remaining = append(remaining, appointment)
			}
		}
		if len(remaining) == len(appointments) {
			return nil, false, nil
		}
		result = models.WriteApplied
		return remaining, true, nil
	})
	if err != nil {
		return models.WriteNotFound, err
	}
	return result, nil
}

func (repo *AppointmentStorageRepository) filter(ctx context.Context, keep func(appointment *models.Appointment) bool) ([]models.Appointment, error) {
	appointments, err := repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Appointment, 0)
	for i := range appointments {
		if keep(&appointments[i]) {
			result = append(result, appointments[i])
		}
	}
	return result, nil
}
