package appointments

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/backend/restclient"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	appointmentBackendClientInstance contracts.AppointmentBackendClient
	onceAppointmentBackendClient     sync.Once
)

type appointmentBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewAppointmentBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.AppointmentBackendClient {
	onceAppointmentBackendClient.Do(func() {
		appointmentBackendClientInstance = &appointmentBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return appointmentBackendClientInstance
}

func (c *appointmentBackendClient) ListByDoctor(ctx context.Context, token string, doctorID int) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.ListByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	var raw []backend_dto.Appointment
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathDoctorAppointments, doctorID),
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.ListByDoctor error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := normalizeAppointments(raw)
	c.Log.Info("appointmentBackendClient.ListByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result)),
	)
	return result, nil
}

func (c *appointmentBackendClient) ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	var raw []backend_dto.Appointment
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathPatientAppointments, patientID),
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.ListByPatient error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := normalizeAppointments(raw)
	c.Log.Info("appointmentBackendClient.ListByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result)),
	)
	return result, nil
}

func (c *appointmentBackendClient) Create(ctx context.Context, token string, request *backend_dto.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.Int(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	var raw backend_dto.Appointment
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathAppointments,
		Token:    token,
		Body:     request,
		Out:      &raw,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.Create error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := normalizeAppointment(raw)
	c.Log.Info("appointmentBackendClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, result.ID),
	)
	return &result, nil
}

func (c *appointmentBackendClient) Complete(ctx context.Context, token string, appointmentID int, request *backend_dto.CompleteAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathCompleteFormat, appointmentID),
		Token:    token,
		Body:     request,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.Complete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentBackendClient.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (c *appointmentBackendClient) Cancel(ctx context.Context, token string, appointmentID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.BackendPathCancelFormat, appointmentID),
		Token:    token,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.Cancel error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentBackendClient.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (c *appointmentBackendClient) AvailableTimes(ctx context.Context, token string, doctorID int, date string) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.AvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var raw backend_dto.AvailableTimes
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method: constvars.MethodPost,
		Path:   constvars.BackendPathAvailableTimes,
		Token:  token,
		Body: &backend_dto.AvailableTimesQuery{
			DoctorID: doctorID,
			Date:     date,
		},
		Out:      &raw,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.AvailableTimes error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &responses.Availability{
		AvailableTimes:  make([]string, 0, len(raw.AvailableTimes)),
		HasAvailability: raw.HasAvailability,
	}
	for _, slot := range raw.AvailableTimes {
		if slot.Valid {
			result.AvailableTimes = append(result.AvailableTimes, slot.Value)
		}
	}

	c.Log.Info("appointmentBackendClient.AvailableTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result.AvailableTimes)),
	)
	return result, nil
}

// normalizeAppointment maps the raw wire record onto the canonical shape:
// status upper-cased with the Portuguese cancellation spelling folded into
// CANCELLED, time reduced to "HH:MM" or empty.
func normalizeAppointment(raw backend_dto.Appointment) responses.Appointment {
	status := strings.ToUpper(strings.TrimSpace(raw.Status))
	if status == "CANCELADO" {
		status = models.AppointmentStatusCancelled
	}

	var clock string
	if raw.Time.Valid {
		clock = raw.Time.Value
	}

	return responses.Appointment{
		ID:                raw.ID,
		DoctorID:          raw.DoctorID,
		PatientID:         raw.PatientID,
		Date:              raw.Date,
		Time:              clock,
		Type:              raw.Type,
		Status:            status,
		WaitingList:       raw.WaitingList,
		ConsultationNotes: raw.ConsultationNotes,
		ConsultationFee:   raw.ConsultationFee,
		PatientName:       raw.PatientName,
		DoctorName:        raw.DoctorName,
		Speciality:        raw.Speciality,
	}
}

func normalizeAppointments(raw []backend_dto.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(raw))
	for _, appointment := range raw {
		result = append(result, normalizeAppointment(appointment))
	}
	return result
}
