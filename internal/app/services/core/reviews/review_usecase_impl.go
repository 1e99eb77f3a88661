package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reviewUsecase struct {
	ReviewRepository contracts.ReviewRepository
	UserRepository   contracts.UserRepository
	Log              *zap.Logger
}

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.ReviewUsecase {
	return &reviewUsecase{
		ReviewRepository: reviewRepository,
		UserRepository:   userRepository,
		Log:              logger,
	}
}

func (uc *reviewUsecase) FindByDoctor(ctx context.Context, doctorID string) ([]models.Review, error) {
	return uc.ReviewRepository.ListReviewsByDoctor(ctx, doctorID)
}

// AddReview stores the review and, before returning, recomputes the rating
// and review count of the reviewed doctor.
func (uc *reviewUsecase) AddReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	doctor, err := uc.UserRepository.FindDoctorByID(ctx, review.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, review.DoctorID)
	}

	created, err := uc.ReviewRepository.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	_, err = uc.RecomputeDoctorRating(ctx, review.DoctorID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecomputeDoctorRating sets the doctor's rating to the mean of all its
// reviews and reviewCount to their number. Reviews are read while the doctor
// record is locked, so the last of several concurrent recomputes sees every
// review stored before it started.
func (uc *reviewUsecase) RecomputeDoctorRating(ctx context.Context, doctorID string) (*models.User, error) {
	doctor, result, err := uc.UserRepository.ModifyUser(ctx, doctorID, func(user *models.User) error {
		if !user.IsDoctor() {
			return exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
		}

		reviews, err := uc.ReviewRepository.ListReviewsByDoctor(ctx, doctorID)
		if err != nil {
			return err
		}

		if user.DoctorProfile == nil {
			user.DoctorProfile = &models.DoctorProfile{}
		}
		user.Rating, user.ReviewCount = models.AggregateRating(reviews, doctorID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Applied() {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctorID)
	}

	uc.Log.Info("reviewUsecase.RecomputeDoctorRating doctor rating updated",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Float64(constvars.LoggingRatingKey, doctor.Rating),
		zap.Int(constvars.LoggingReviewCountKey, doctor.ReviewCount),
		zap.Stringer(constvars.LoggingWriteResultKey, result),
	)
	return doctor, nil
}
