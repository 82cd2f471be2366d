package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/services/core/billing"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	DoctorBackendClient      contracts.DoctorBackendClient
	PatientBackendClient     contracts.PatientBackendClient
	SessionService           contracts.SessionService
	Log                      *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			AppointmentBackendClient: appointmentBackendClient,
			DoctorBackendClient:      doctorBackendClient,
			PatientBackendClient:     patientBackendClient,
			SessionService:           sessionService,
			Log:                      logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) DoctorDashboard(ctx context.Context, sessionData string) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.DoctorDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot open the doctor dashboard", session.Role))
	}

	doctor, err := uc.DoctorBackendClient.FindByID(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentBackendClient.ListByDoctor(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	uc.logAnomalousDates(requestID, appointments)
	buckets := Partition(appointments, now)

	today := uc.enrichForDoctor(ctx, session.BackendToken, doctor, buckets.Today, now)
	upcoming := uc.enrichForDoctor(ctx, session.BackendToken, doctor, buckets.Upcoming, now)

	waitingList := []responses.Appointment{}
	for _, appointment := range append(append([]responses.Appointment{}, today...), upcoming...) {
		if appointment.WaitingList {
			waitingList = append(waitingList, appointment)
		}
	}

	uc.Log.Info("dashboardUsecase.DoctorDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return &responses.DoctorDashboard{
		Doctor:      *doctor,
		Today:       today,
		Upcoming:    upcoming,
		WaitingList: waitingList,
		Stats: responses.DoctorDashboardStats{
			TodayAppointments: len(today),
			UpcomingTotal:     len(upcoming),
			WaitingListCount:  len(waitingList),
			CompletedTotal:    len(buckets.Completed),
		},
	}, nil
}

func (uc *dashboardUsecase) PatientDashboard(ctx context.Context, sessionData string) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.PatientDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot open the patient dashboard", session.Role))
	}

	patient, err := uc.PatientBackendClient.FindByID(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}
	patient.Age = utils.CalculateAge(patient.DateOfBirth, time.Now())

	appointments, err := uc.AppointmentBackendClient.ListByPatient(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}

	uc.logAnomalousDates(requestID, appointments)
	buckets := Partition(appointments, time.Now())

	uc.Log.Info("dashboardUsecase.PatientDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return &responses.PatientDashboard{
		Patient:   *patient,
		Today:     buckets.Today,
		Upcoming:  buckets.Upcoming,
		Completed: buckets.Completed,
	}, nil
}

// enrichForDoctor decorates active appointments with the patient's age,
// health plan, and the evaluated fee. Lookups are best effort; a failed
// lookup leaves the placeholders in place and the dashboard still renders.
func (uc *dashboardUsecase) enrichForDoctor(ctx context.Context, token string, doctor *responses.Doctor, appointments []responses.Appointment, now time.Time) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		patient, err := uc.PatientBackendClient.FindByID(ctx, token, appointment.PatientID)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("dashboardUsecase patient enrichment failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPatientIDKey, appointment.PatientID),
				zap.Error(err),
			)
			result = append(result, appointment)
			continue
		}

		appointment.PatientName = patient.Name
		appointment.PatientAge = utils.CalculateAge(patient.DateOfBirth, now)
		appointment.PatientHealthPlan = patient.HealthPlan

		feePolicy := billing.EvaluateFee(doctor.HealthPlan, patient.HealthPlan, appointment.ConsultationFee)
		appointment.ConsultationFee = &feePolicy.Amount

		result = append(result, appointment)
	}
	return result
}

func (uc *dashboardUsecase) logAnomalousDates(requestID string, appointments []responses.Appointment) {
	for _, appointment := range appointments {
		if _, err := utils.ParseLocalDate(appointment.Date); err != nil {
			uc.Log.Warn("dashboardUsecase appointment has malformed date, treating as upcoming",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.String(constvars.LoggingDateKey, appointment.Date),
			)
		}
	}
}
