package controllers

import (
	"context"
	"net/http"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) Doctor(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DashboardUsecase.DoctorDashboard(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardMessage, result)
}

func (ctrl *DashboardController) Patient(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DashboardUsecase.PatientDashboard(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardMessage, result)
}
