package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type ReviewUsecase interface {
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Review, error)
	AddReview(ctx context.Context, review *models.Review) (*models.Review, error)
	RecomputeDoctorRating(ctx context.Context, doctorID string) (*models.User, error)
}

type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListReviewsByDoctor(ctx context.Context, doctorID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
}
