package scheduling

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/core/billing"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type schedulingUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	DoctorBackendClient      contracts.DoctorBackendClient
	PatientBackendClient     contracts.PatientBackendClient
	SessionService           contracts.SessionService
	AvailabilityUsecase      contracts.AvailabilityUsecase
	NotifierService          contracts.NotifierService
	Log                      *zap.Logger
}

var (
	schedulingUsecaseInstance contracts.SchedulingUsecase
	onceSchedulingUsecase     sync.Once
)

func NewSchedulingUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	sessionService contracts.SessionService,
	availabilityUsecase contracts.AvailabilityUsecase,
	notifierService contracts.NotifierService,
	logger *zap.Logger,
) contracts.SchedulingUsecase {
	onceSchedulingUsecase.Do(func() {
		schedulingUsecaseInstance = &schedulingUsecase{
			AppointmentBackendClient: appointmentBackendClient,
			DoctorBackendClient:      doctorBackendClient,
			PatientBackendClient:     patientBackendClient,
			SessionService:           sessionService,
			AvailabilityUsecase:      availabilityUsecase,
			NotifierService:          notifierService,
			Log:                      logger,
		}
	})
	return schedulingUsecaseInstance
}

// Book submits a booking for the authenticated patient. With availability the
// chosen slot is sent as-is; without it the request joins the waiting list
// and any stray slot selection is discarded. All validation happens before
// the first network call.
func (uc *schedulingUsecase) Book(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.BookingOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot book an appointment", session.Role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.HasAvailability && strings.TrimSpace(request.Time) == "" {
		return nil, exceptions.ErrMissingRequiredField(constvars.ErrClientTimeRequired)
	}

	createRequest := &backend_dto.CreateAppointment{
		DoctorID:          request.DoctorID,
		PatientID:         session.UserID,
		Date:              request.Date,
		Type:              request.Type,
		AcceptWaitingList: !request.HasAvailability,
	}
	if request.HasAvailability {
		selectedTime := request.Time
		createRequest.Time = &selectedTime
	}

	appointment, err := uc.AppointmentBackendClient.Create(ctx, session.BackendToken, createRequest)
	if err != nil {
		uc.Log.Error("schedulingUsecase.Book backend rejected booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.AvailabilityUsecase.Invalidate(ctx, request.DoctorID, request.Date); err != nil {
		uc.Log.Warn("schedulingUsecase.Book failed to invalidate availability cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	outcome := responses.BookingOutcomeBooked
	event := constvars.NotificationEventBookingConfirmed
	if appointment.WaitingList || !request.HasAvailability {
		outcome = responses.BookingOutcomeWaitlisted
		event = constvars.NotificationEventBookingWaitlisted
	}

	uc.publishEvent(ctx, requestID, &requests.NotificationEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Date:          appointment.Date,
		Time:          appointment.Time,
	})

	uc.Log.Info("schedulingUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &responses.BookingOutcome{
		Outcome:     outcome,
		Appointment: *appointment,
	}, nil
}

// Complete closes a consultation with the doctor's notes. The submitted fee
// follows the plan-coverage policy: a covered visit always completes with a
// zero fee no matter what was entered.
func (uc *schedulingUsecase) Complete(ctx context.Context, sessionData string, appointmentID int, request *requests.CompleteAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.IsDoctor() {
		return exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot complete a consultation", session.Role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if strings.TrimSpace(request.ConsultationNotes) == "" {
		return exceptions.ErrMissingRequiredField(constvars.ErrClientNotesRequired)
	}

	appointment, err := uc.findDoctorAppointment(ctx, session, appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status == models.AppointmentStatusCompleted || appointment.Status == models.AppointmentStatusCancelled {
		return exceptions.ErrAppointmentTerminal(fmt.Errorf("appointment %d already %s", appointmentID, appointment.Status))
	}

	fee := uc.resolveFee(ctx, session, appointment, request.ConsultationFee)

	err = uc.AppointmentBackendClient.Complete(ctx, session.BackendToken, appointmentID, &backend_dto.CompleteAppointment{
		ConsultationNotes: request.ConsultationNotes,
		ConsultationFee:   fee,
	})
	if err != nil {
		uc.Log.Error("schedulingUsecase.Complete backend rejected completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("schedulingUsecase.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// Cancel voids an appointment for either party. The backend arbitrates
// repeated cancellation; whatever it reports is surfaced unchanged.
func (uc *schedulingUsecase) Cancel(ctx context.Context, sessionData string, appointmentID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schedulingUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment := uc.findOwnAppointment(ctx, session, appointmentID)

	if err := uc.AppointmentBackendClient.Cancel(ctx, session.BackendToken, appointmentID); err != nil {
		uc.Log.Error("schedulingUsecase.Cancel backend rejected cancellation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if appointment != nil {
		if err := uc.AvailabilityUsecase.Invalidate(ctx, appointment.DoctorID, appointment.Date); err != nil {
			uc.Log.Warn("schedulingUsecase.Cancel failed to invalidate availability cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		uc.publishEvent(ctx, requestID, &requests.NotificationEvent{
			Event:         constvars.NotificationEventAppointmentCancelled,
			AppointmentID: appointment.ID,
			DoctorID:      appointment.DoctorID,
			PatientID:     appointment.PatientID,
			Date:          appointment.Date,
			Time:          appointment.Time,
		})
	}

	uc.Log.Info("schedulingUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *schedulingUsecase) findDoctorAppointment(ctx context.Context, session *models.Session, appointmentID int) (*responses.Appointment, error) {
	appointments, err := uc.AppointmentBackendClient.ListByDoctor(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			return &appointments[i], nil
		}
	}
	return nil, exceptions.ErrBackendNotFound(fmt.Errorf("appointment %d not found for doctor %d", appointmentID, session.UserID), constvars.ResourceAppointment)
}

// findOwnAppointment is best effort: cancellation proceeds even when the
// record cannot be located, only cache invalidation and the event are
// skipped.
func (uc *schedulingUsecase) findOwnAppointment(ctx context.Context, session *models.Session, appointmentID int) *responses.Appointment {
	var appointments []responses.Appointment
	var err error
	if session.IsDoctor() {
		appointments, err = uc.AppointmentBackendClient.ListByDoctor(ctx, session.BackendToken, session.UserID)
	} else {
		appointments, err = uc.AppointmentBackendClient.ListByPatient(ctx, session.BackendToken, session.UserID)
	}
	if err != nil {
		return nil
	}
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			return &appointments[i]
		}
	}
	return nil
}

// resolveFee applies the coverage policy at submission time. When the plan
// lookup fails the entered fee is kept, with zero as the fallback.
func (uc *schedulingUsecase) resolveFee(ctx context.Context, session *models.Session, appointment *responses.Appointment, enteredFee *float64) float64 {
	doctor, doctorErr := uc.DoctorBackendClient.FindByID(ctx, session.BackendToken, session.UserID)
	patient, patientErr := uc.PatientBackendClient.FindByID(ctx, session.BackendToken, appointment.PatientID)
	if doctorErr != nil || patientErr != nil {
		if enteredFee != nil {
			return *enteredFee
		}
		return 0
	}

	feePolicy := billing.EvaluateFee(doctor.HealthPlan, patient.HealthPlan, enteredFee)
	if !feePolicy.Editable {
		return 0
	}
	if enteredFee != nil {
		return *enteredFee
	}
	return feePolicy.Amount
}

func (uc *schedulingUsecase) publishEvent(ctx context.Context, requestID string, event *requests.NotificationEvent) {
	if err := uc.NotifierService.Publish(ctx, event); err != nil {
		uc.Log.Warn("schedulingUsecase failed to publish notification event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
	}
}
