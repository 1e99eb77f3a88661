package dashboard

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.RequestTimeout())
	defer cancel()

	result, err := ctrl.DashboardUsecase.GetStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardStatsOK, result)
}
