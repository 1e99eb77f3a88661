package session

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, sessionManager contracts.SessionManager, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		SessionManager: sessionManager,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	err := utils.ParseAndValidate(r, request, utils.SanitizeRegisterUserRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	user, err := ctrl.SessionManager.Register(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.SessionManager.StartSession(ctx, user)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := utils.ParseAndValidate(r, request, utils.SanitizeLoginRequest)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	user, err := ctrl.SessionManager.Login(ctx, request.Email, request.Password)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if user == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidEmailOrPassword(nil))
		return
	}

	result, err := ctrl.SessionManager.StartSession(ctx, user)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

// Logout ends only the session the request's token belongs to.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	sessionID, err := utils.SessionIDFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionManager.EndSession(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	currentUser, err := utils.CurrentUserFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeSuccess, currentUser)
}
