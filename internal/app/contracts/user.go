package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	SearchDoctors(ctx context.Context, filter *requests.DoctorFilter) ([]models.User, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.User, error)
	SearchDoctorsForAdmin(ctx context.Context, search string) ([]models.User, error)
	SearchPatients(ctx context.Context, search string) ([]models.User, error)
	ApproveDoctor(ctx context.Context, doctorID string) (*models.User, error)
	RejectDoctor(ctx context.Context, doctorID string) error
	UpdateProfile(ctx context.Context, user *models.User, request *requests.UpdateProfile) (*models.User, error)
}

// UserRepository reads return nil, nil for an id that is not stored.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListDoctors(ctx context.Context) ([]models.User, error)
	ListApprovedDoctors(ctx context.Context) ([]models.User, error)
	ListPatients(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) (models.WriteResult, error)
	// ModifyUser edits one stored user in place. Concurrent calls are
	// serialized, so change always sees the latest record.
	ModifyUser(ctx context.Context, userID string, change func(user *models.User) error) (*models.User, models.WriteResult, error)
	DeleteUser(ctx context.Context, userID string) (models.WriteResult, error)
}
