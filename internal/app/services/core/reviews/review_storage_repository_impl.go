package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"time"
)

type ReviewStorageRepository struct {
	Codec *codec.Codec
	Now   func() time.Time
}

func NewReviewStorageRepository(c *codec.Codec) contracts.ReviewRepository {
	return &ReviewStorageRepository{
		Codec: c,
		Now:   time.Now,
	}
}

func (repo *ReviewStorageRepository) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := codec.ReadOrDefault(ctx, repo.Codec, constvars.StorageKeyReviews, []models.Review{})
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (repo *ReviewStorageRepository) ListReviewsByDoctor(ctx context.Context, doctorID string) ([]models.Review, error) {
	reviews, err := repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Review, 0)
	for _, review := range reviews {
		if review.DoctorID == doctorID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (repo *ReviewStorageRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	created := *review
	created.ID = utils.GenerateID()
	created.CreatedAt = utils.Timestamp(repo.Now())

	err := codec.Update(ctx, repo.Codec, constvars.StorageKeyReviews, []models.Review{}, func(reviews []models.Review) ([]models.Review, bool, error) {
		return append(reviews, created), true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
