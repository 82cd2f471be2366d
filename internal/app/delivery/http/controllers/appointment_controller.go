package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                 *zap.Logger
	SchedulingUsecase   contracts.SchedulingUsecase
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAppointmentController(
	logger *zap.Logger,
	schedulingUsecase contracts.SchedulingUsecase,
	availabilityUsecase contracts.AvailabilityUsecase,
) *AppointmentController {
	return &AppointmentController{
		Log:                 logger,
		SchedulingUsecase:   schedulingUsecase,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SchedulingUsecase.Book(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.BookingConfirmedMessage
	if result.Outcome == responses.BookingOutcomeWaitlisted {
		message = constvars.BookingWaitlistedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *AppointmentController) Availability(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	request := new(requests.Availability)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.Resolve(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilityMessage, result)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	appointmentID, err := strconv.Atoi(chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request := new(requests.CompleteAppointment)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.SchedulingUsecase.Complete(ctx, sessionData, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteSuccessMessage, nil)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	appointmentID, err := strconv.Atoi(chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.SchedulingUsecase.Cancel(ctx, sessionData, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelSuccessMessage, nil)
}
