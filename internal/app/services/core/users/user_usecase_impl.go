package users

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository      contracts.UserRepository
	NotificationUsecase contracts.NotificationUsecase
	Log                 *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:      userRepository,
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

// SearchDoctors lists approved doctors. Search matches name, specialization
// or location as a case-insensitive substring, specialization must match
// exactly when set.
func (uc *userUsecase) SearchDoctors(ctx context.Context, filter *requests.DoctorFilter) ([]models.User, error) {
	doctors, err := uc.UserRepository.ListApprovedDoctors(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]models.User, 0, len(doctors))
	for _, doctor := range doctors {
		if filter.Specialization != "" && doctor.Specialization != filter.Specialization {
			continue
		}
		if query != "" && !containsAny(query, doctor.Name, doctor.Specialization, doctor.Location) {
			continue
		}
		result = append(result, doctor)
	}
	return result, nil
}

func (uc *userUsecase) FindDoctorByID(ctx context.Context, doctorID string) (*models.User, error) {
	doctor, err := uc.UserRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
	}
	return doctor, nil
}

func (uc *userUsecase) SearchDoctorsForAdmin(ctx context.Context, search string) ([]models.User, error) {
	doctors, err := uc.UserRepository.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	return filterUsers(doctors, search, func(user *models.User) []string {
		return []string{user.Name, user.SpecializationName()}
	}), nil
}

func (uc *userUsecase) SearchPatients(ctx context.Context, search string) ([]models.User, error) {
	patients, err := uc.UserRepository.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	return filterUsers(patients, search, func(user *models.User) []string {
		return []string{user.Name, user.Email}
	}), nil
}

// ApproveDoctor marks the doctor approved and then notifies them. A failed
// notification is logged and does not undo the approval.
func (uc *userUsecase) ApproveDoctor(ctx context.Context, doctorID string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	doctor, result, err := uc.UserRepository.ModifyUser(ctx, doctorID, func(user *models.User) error {
		if !user.IsDoctor() {
			return exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
		}
		if user.DoctorProfile == nil {
			user.DoctorProfile = &models.DoctorProfile{}
		}
		user.IsApproved = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Applied() {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
	}

	uc.Log.Info("userUsecase.ApproveDoctor doctor approved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	_, err = uc.NotificationUsecase.Notify(ctx, doctor.ID, constvars.NotificationTitleDoctorApproved, constvars.NotificationMessageDoctorApproved)
	if err != nil {
		uc.Log.Warn("userUsecase.ApproveDoctor approval notification not stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
	return doctor, nil
}

// RejectDoctor removes a doctor application entirely.
func (uc *userUsecase) RejectDoctor(ctx context.Context, doctorID string) error {
	requestID := utils.GetRequestID(ctx)

	doctor, err := uc.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return err
	}

	result, err := uc.UserRepository.DeleteUser(ctx, doctor.ID)
	if err != nil {
		return err
	}

	uc.Log.Info("userUsecase.RejectDoctor doctor removed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Stringer(constvars.LoggingWriteResultKey, result),
	)
	if !result.Applied() {
		return exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
	}
	return nil
}

// UpdateProfile applies the editable fields to the stored copy of user.
// Derived doctor fields (rating, reviewCount, isApproved) are never taken
// from the request.
func (uc *userUsecase) UpdateProfile(ctx context.Context, user *models.User, request *requests.UpdateProfile) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	stored, result, err := uc.UserRepository.ModifyUser(ctx, user.ID, func(stored *models.User) error {
		applyProfile(stored, request)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Applied() {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceUser, user.ID)
	}

	uc.Log.Info("userUsecase.UpdateProfile profile updated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, stored.ID),
	)
	return stored, nil
}

func applyProfile(stored *models.User, request *requests.UpdateProfile) {
	stored.Name = request.Name
	stored.Phone = request.Phone
	if request.Avatar != "" {
		stored.Avatar = request.Avatar
	}

	switch stored.Role {
	case models.RoleDoctor:
		if stored.DoctorProfile == nil {
			stored.DoctorProfile = &models.DoctorProfile{}
		}
		if request.Specialization != "" {
			stored.Specialization = request.Specialization
		}
		stored.Qualification = request.Qualification
		stored.Experience = request.Experience
		stored.Hospital = request.Hospital
		stored.Location = request.Location
		stored.Fee = request.Fee
		stored.Bio = request.Bio
	case models.RolePatient:
		if stored.PatientProfile == nil {
			stored.PatientProfile = &models.PatientProfile{}
		}
		stored.DateOfBirth = request.DateOfBirth
		stored.Address = request.Address
		if request.MedicalHistory != nil {
			stored.MedicalHistory = request.MedicalHistory
		}
	}
}

func filterUsers(users []models.User, search string, fields func(user *models.User) []string) []models.User {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return users
	}

	result := make([]models.User, 0, len(users))
	for i := range users {
		if containsAny(query, fields(&users[i])...) {
			result = append(result, users[i])
		}
	}
	return result
}

func containsAny(query string, values ...string) bool {
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}
