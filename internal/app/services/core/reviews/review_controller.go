package reviews

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewController struct {
	Log            *zap.Logger
	ReviewUsecase  contracts.ReviewUsecase
	InternalConfig *config.InternalConfig
}

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase, internalConfig *config.InternalConfig) *ReviewController {
	return &ReviewController{
		Log:            logger,
		ReviewUsecase:  reviewUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReviewController) FindByDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.ReviewUsecase.FindByDoctor(ctx, chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReviewsSuccess, result)
}

func (ctrl *ReviewController) AddReview(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReview)
	err := utils.ParseAndValidate(r, request, utils.SanitizeCreateReviewRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	currentUser, err := utils.CurrentUserFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ReviewUsecase.AddReview(ctx, &models.Review{
		PatientID:   currentUser.ID,
		PatientName: currentUser.Name,
		DoctorID:    chi.URLParam(r, constvars.URLParamDoctorID),
		Rating:      request.Rating,
		Comment:     request.Comment,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReviewAddedOK, result)
}
