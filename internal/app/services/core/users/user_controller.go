package users

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	SessionManager contracts.SessionManager
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, sessionManager contracts.SessionManager, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		SessionManager: sessionManager,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	filter := &requests.DoctorFilter{
		Search:         r.URL.Query().Get(constvars.QueryParamSearch),
		Specialization: r.URL.Query().Get(constvars.QueryParamSpecialty),
	}

	result, err := ctrl.UserUsecase.SearchDoctors(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccess, result)
}

func (ctrl *UserController) FindDoctorByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.UserUsecase.FindDoctorByID(ctx, chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccess, result)
}

// UpdateMe edits the signed-in user's profile and refreshes the session copy.
func (ctrl *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateProfile)
	err := utils.ParseAndValidate(r, request, utils.SanitizeUpdateProfileRequest)
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

	result, err := ctrl.UserUsecase.UpdateProfile(ctx, currentUser, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionManager.RefreshCurrentUser(ctx, result)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserUpdatedSuccess, result)
}

func (ctrl *UserController) FindDoctorsForAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.UserUsecase.SearchDoctorsForAdmin(ctx, r.URL.Query().Get(constvars.QueryParamSearch))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccess, result)
}

func (ctrl *UserController) FindPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.UserUsecase.SearchPatients(ctx, r.URL.Query().Get(constvars.QueryParamSearch))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccess, result)
}

func (ctrl *UserController) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.UserUsecase.ApproveDoctor(ctx, chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorApprovedSuccess, result)
}

func (ctrl *UserController) RejectDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	err := ctrl.UserUsecase.RejectDoctor(ctx, chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorRejectedSuccess, nil)
}
