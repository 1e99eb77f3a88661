package appointments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	NotificationUsecase   contracts.NotificationUsecase
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		NotificationUsecase:   notificationUsecase,
		Log:                   logger,
	}
}

// BookAppointment creates a pending appointment with an approved doctor and
// tells the doctor about it. Patient and doctor names are copied as they are
// now. Once the appointment is stored the booking succeeds, even when the
// notification cannot be stored.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, patient *models.User, request *requests.BookAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)

	if !patient.IsPatient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	doctor, err := uc.UserRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, request.DoctorID)
	}
	if !doctor.IsApprovedDoctor() {
		return nil, exceptions.ErrDoctorNotApproved(nil, doctor.ID)
	}

	reason := request.Reason
	if reason == "" {
		reason = constvars.DefaultAppointmentReason
	}

	appointment, err := uc.AppointmentRepository.CreateAppointment(ctx, &models.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        request.Date,
		Time:        request.Time,
		Status:      models.AppointmentStatusPending,
		Reason:      reason,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.BookAppointment appointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointment.ID),
		zap.String(constvars.LoggingUserIDKey, patient.ID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)

	_, err = uc.NotificationUsecase.Notify(ctx, doctor.ID,
		constvars.NotificationTitleAppointmentRequested,
		fmt.Sprintf(constvars.NotificationMessageAppointmentRequest, patient.Name, appointment.Date, appointment.Time),
	)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.BookAppointment booking notification not stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentKey, appointment.ID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
	}
	return appointment, nil
}

// FindAllByUser lists the appointments a user takes part in. Admins see all.
func (uc *appointmentUsecase) FindAllByUser(ctx context.Context, user *models.User) ([]models.Appointment, error) {
	switch user.Role {
	case models.RolePatient:
		return uc.AppointmentRepository.ListAppointmentsByPatient(ctx, user.ID)
	case models.RoleDoctor:
		return uc.AppointmentRepository.ListAppointmentsByDoctor(ctx, user.ID)
	case models.RoleAdmin:
		return uc.AppointmentRepository.ListAppointments(ctx)
	}
	return nil, exceptions.ErrNotMatchRoleType(nil)
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRepository.ListAppointments(ctx)
}

// UpdateStatus moves an appointment along its status machine. Patients may
// only cancel their own appointments. Doctors act on their own appointments
// and are the only ones whose notes and prescription are kept.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, user *models.User, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, appointmentID)
	}

	next := models.AppointmentStatus(request.Status)
	from := appointment.Status

	switch user.Role {
	case models.RolePatient:
		if appointment.PatientID != user.ID || next != models.AppointmentStatusCancelled {
			return nil, exceptions.ErrNotMatchRoleType(nil)
		}
	case models.RoleDoctor:
		if appointment.DoctorID != user.ID {
			return nil, exceptions.ErrNotMatchRoleType(nil)
		}
		fallthrough
	case models.RoleAdmin:
		if request.Notes != "" {
			appointment.Notes = request.Notes
		}
		if request.Prescription != "" {
			appointment.Prescription = request.Prescription
		}
	default:
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointment.Status = next
	result, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.UpdateStatus status change refused",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentKey, appointmentID),
			zap.String(constvars.LoggingStatusFromKey, string(from)),
			zap.String(constvars.LoggingStatusToKey, string(next)),
			zap.Error(err),
		)
		return nil, err
	}
	if !result.Applied() {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, appointmentID)
	}

	uc.Log.Info("appointmentUsecase.UpdateStatus appointment updated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String(constvars.LoggingStatusFromKey, string(from)),
		zap.String(constvars.LoggingStatusToKey, string(next)),
	)

	if from != next {
		err = uc.notifyStatusChange(ctx, user, appointment)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.UpdateStatus status notification not stored",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentKey, appointmentID),
				zap.Error(err),
			)
		}
	}
	return appointment, nil
}

// notifyStatusChange tells the other party of the appointment.
func (uc *appointmentUsecase) notifyStatusChange(ctx context.Context, actor *models.User, appointment *models.Appointment) error {
	recipientID, counterpart := appointment.PatientID, appointment.DoctorName
	if actor.IsPatient() {
		recipientID, counterpart = appointment.DoctorID, appointment.PatientName
	}

	_, err := uc.NotificationUsecase.Notify(ctx, recipientID,
		fmt.Sprintf(constvars.NotificationTitleAppointmentUpdated, appointment.Status),
		fmt.Sprintf(constvars.NotificationMessageAppointmentUpdate, counterpart, appointment.Date, appointment.Time, appointment.Status),
	)
	return err
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	result, err := uc.AppointmentRepository.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.Stringer(constvars.LoggingWriteResultKey, result),
	)
	if !result.Applied() {
		return exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, appointmentID)
	}
	return nil
}
