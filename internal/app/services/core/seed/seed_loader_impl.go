// Package seed fills empty storage with the bundled sample dataset.
package seed

import (
	"context"
	_ "embed"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

//go:embed data/initial-data.json
var initialData []byte

// Dataset is the bundled document. Doctors, patients and admin lack role and
// createdAt, appointments lack date and createdAt.
type Dataset struct {
	Doctors      []models.User     `json:"doctors"`
	Patients     []models.User     `json:"patients"`
	Admin        models.User       `json:"admin"`
	Appointments []SeedAppointment `json:"appointments"`
	Reviews      []models.Review   `json:"reviews"`
}

// SeedAppointment dates the appointment DayOffset days from the seeding day.
// Without an offset the n-th appointment (from zero) lands n+1 days ahead.
type SeedAppointment struct {
	models.Appointment
	DayOffset *int `json:"dayOffset,omitempty"`
}

type Loader struct {
	Codec          *codec.Codec
	UserRepository contracts.UserRepository
	Log            *zap.Logger
	Now            func() time.Time
	Data           []byte
}

func NewLoader(c *codec.Codec, userRepository contracts.UserRepository, logger *zap.Logger) contracts.SeedLoader {
	return &Loader{
		Codec:          c,
		UserRepository: userRepository,
		Log:            logger,
		Now:            time.Now,
		Data:           initialData,
	}
}

// EnsureSeeded writes the dataset when the users collection is empty and
// reports whether it did. Users are written last so that an interrupted run
// is retried in full next time.
func (l *Loader) EnsureSeeded(ctx context.Context) (bool, error) {
	existing, err := l.UserRepository.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		l.Log.Debug("seed.EnsureSeeded storage already holds users, skipping")
		return false, nil
	}

	dataset := new(Dataset)
	err = json.Unmarshal(l.Data, dataset)
	if err != nil {
		return false, exceptions.ErrSeedDatasetInvalid(err)
	}

	now := l.Now()
	users, appointments, reviews := l.build(dataset, now)

	err = utils.LogOperation(l.Log, "seed.EnsureSeeded", utils.GetRequestID(ctx), func() error {
		err := l.Codec.Write(ctx, constvars.StorageKeyAppointments, appointments)
		if err != nil {
			return err
		}
		err = l.Codec.Write(ctx, constvars.StorageKeyReviews, reviews)
		if err != nil {
			return err
		}
		return l.Codec.Write(ctx, constvars.StorageKeyUsers, users)
	})
	if err != nil {
		return false, err
	}

	l.Log.Info("seed.EnsureSeeded sample data loaded",
		zap.Int("users", len(users)),
		zap.Int("appointments", len(appointments)),
		zap.Int("reviews", len(reviews)),
	)
	return true, nil
}

func (l *Loader) build(dataset *Dataset, now time.Time) ([]models.User, []models.Appointment, []models.Review) {
	createdAt := utils.Timestamp(now)

	reviews := make([]models.Review, 0, len(dataset.Reviews))
	for _, review := range dataset.Reviews {
		review.CreatedAt = createdAt
		reviews = append(reviews, review)
	}

	users := make([]models.User, 0, len(dataset.Doctors)+len(dataset.Patients)+1)
	for _, doctor := range dataset.Doctors {
		doctor.Role = models.RoleDoctor
		doctor.CreatedAt = createdAt
		doctor.PatientProfile = nil
		if doctor.DoctorProfile == nil {
			doctor.DoctorProfile = &models.DoctorProfile{}
		}
		if doctor.Availability == nil {
			doctor.Availability = []models.DoctorAvailability{}
		}
		doctor.Rating, doctor.ReviewCount = models.AggregateRating(reviews, doctor.ID)
		users = append(users, doctor)
	}
	for _, patient := range dataset.Patients {
		patient.Role = models.RolePatient
		patient.CreatedAt = createdAt
		patient.DoctorProfile = nil
		if patient.PatientProfile == nil {
			patient.PatientProfile = &models.PatientProfile{}
		}
		if patient.MedicalHistory == nil {
			patient.MedicalHistory = []string{}
		}
		users = append(users, patient)
	}
	admin := dataset.Admin
	admin.Role = models.RoleAdmin
	admin.CreatedAt = createdAt
	admin.PatientProfile = nil
	admin.DoctorProfile = nil
	users = append(users, admin)

	appointments := make([]models.Appointment, 0, len(dataset.Appointments))
	for i, seeded := range dataset.Appointments {
		offset := i + 1
		if seeded.DayOffset != nil {
			offset = *seeded.DayOffset
		}

		appointment := seeded.Appointment
		appointment.Date = utils.CalendarDate(utils.AddCalendarDays(now, offset))
		appointment.CreatedAt = createdAt
		if appointment.Status == "" {
			appointment.Status = models.AppointmentStatusPending
		}
		if appointment.Reason == "" {
			appointment.Reason = constvars.DefaultAppointmentReason
		}
		appointments = append(appointments, appointment)
	}

	return users, appointments, reviews
}
