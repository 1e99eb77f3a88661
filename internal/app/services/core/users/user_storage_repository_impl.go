package users

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
)

type UserStorageRepository struct {
	Codec *codec.Codec
}

func NewUserStorageRepository(c *codec.Codec) contracts.UserRepository {
	return &UserStorageRepository{
		Codec: c,
	}
}

func (repo *UserStorageRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := codec.ReadOrDefault(ctx, repo.Codec, constvars.StorageKeyUsers, []models.User{})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (repo *UserStorageRepository) ListDoctors(ctx context.Context) ([]models.User, error) {
	return repo.filter(ctx, func(user *models.User) bool {
		return user.IsDoctor()
	})
}

func (repo *UserStorageRepository) ListApprovedDoctors(ctx context.Context) ([]models.User, error) {
	return repo.filter(ctx, func(user *models.User) bool {
		return user.IsApprovedDoctor()
	})
}

func (repo *UserStorageRepository) ListPatients(ctx context.Context) ([]models.User, error) {
	return repo.filter(ctx, func(user *models.User) bool {
		return user.IsPatient()
	})
}

func (repo *UserStorageRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return repo.first(ctx, func(user *models.User) bool {
		return user.ID == userID
	})
}

func (repo *UserStorageRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.User, error) {
	return repo.first(ctx, func(user *models.User) bool {
		return user.ID == doctorID && user.IsDoctor()
	})
}

// FindByEmail returns the first user whose email matches case-insensitively.
// Duplicated emails are allowed, later ones are shadowed.
func (repo *UserStorageRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.first(ctx, func(user *models.User) bool {
		return user.HasEmail(email)
	})
}

func (repo *UserStorageRepository) CreateUser(ctx context.Context, user *models.User) error {
	return codec.Update(ctx, repo.Codec, constvars.StorageKeyUsers, []models.User{}, func(users []models.User) ([]models.User, bool, error) {
		return append(users, *user), true, nil
	})
}

// UpdateUser replaces the stored record that has user.ID as a whole.
func (repo *UserStorageRepository) UpdateUser(ctx context.Context, user *models.User) (models.WriteResult, error) {
	_, result, err := repo.ModifyUser(ctx, user.ID, func(stored *models.User) error {
		*stored = *user
		return nil
	})
	return result, err
}

// ModifyUser applies change to the stored record of userID under the users
// slot lock and returns the record as written. Nothing is written when the
// user is missing or change fails.
func (repo *UserStorageRepository) ModifyUser(ctx context.Context, userID string, change func(user *models.User) error) (*models.User, models.WriteResult, error) {
	var modified *models.User
	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyUsers, []models.User{}, func(users []models.User) ([]models.User, bool, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			err := change(&users[i])
			if err != nil {
				return nil, false, err
			}
			modified = new(models.User)
			*modified = users[i]
			return users, true, nil
		}
		return nil, false, nil
	})
	if err != nil || modified == nil {
		return nil, models.WriteNotFound, err
	}
	return modified, models.WriteApplied, nil
}

func (repo *UserStorageRepository) DeleteUser(ctx context.Context, userID string) (models.WriteResult, error) {
	result := models.WriteNotFound
	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyUsers, []models.User{}, func(users []models.User) ([]models.User, bool, error) {
		remaining := make([]models.User, 0, len(users))
		for _, user := range users {
			if user.ID != userID {
				remaining = append(remaining, user)
			}
		}
		if len(remaining) == len(users) {
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

func (repo *UserStorageRepository) filter(ctx context.Context, keep func(user *models.User) bool) ([]models.User, error) {
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.User, 0, len(users))
	for i := range users {
		if keep(&users[i]) {
			result = append(result, users[i])
		}
	}
	return result, nil
}

func (repo *UserStorageRepository) first(ctx context.Context, match func(user *models.User) bool) (*models.User, error) {
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if match(&users[i]) {
			return &users[i], nil
		}
	}
	return nil, nil
}
