package notifications

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	InternalConfig      *config.InternalConfig
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, internalConfig *config.InternalConfig) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *NotificationController) FindMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	currentUser, err := utils.CurrentUserFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.NotificationUsecase.FindAllByUser(ctx, currentUser.ID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccess, result)
}

func (ctrl *NotificationController) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	currentUser, err := utils.CurrentUserFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.NotificationUsecase.MarkAsRead(ctx, currentUser, chi.URLParam(r, constvars.URLParamNotificationID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccess, nil)
}
