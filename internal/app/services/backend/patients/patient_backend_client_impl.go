package patients

import (
	"context"
	"fmt"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/services/backend/restclient"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	patientBackendClientInstance contracts.PatientBackendClient
	oncePatientBackendClient     sync.Once
)

type patientBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewPatientBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.PatientBackendClient {
	oncePatientBackendClient.Do(func() {
		patientBackendClientInstance = &patientBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return patientBackendClientInstance
}

func (c *patientBackendClient) Register(ctx context.Context, request *backend_dto.RegisterPatient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathRegisterPatient,
		Body:     request,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		c.Log.Error("patientBackendClient.Register error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("patientBackendClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *patientBackendClient) FindByID(ctx context.Context, token string, patientID int) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	var raw backend_dto.Patient
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathPatientFormat, patientID),
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		c.Log.Error("patientBackendClient.FindByID error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildPatientResponse(raw)
	return &result, nil
}

func (c *patientBackendClient) Update(ctx context.Context, token string, patientID int, request *backend_dto.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	var raw backend_dto.Patient
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathPatientFormat, patientID),
		Token:    token,
		Body:     request,
		Out:      &raw,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		c.Log.Error("patientBackendClient.Update error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildPatientResponse(raw)
	return &result, nil
}

func (c *patientBackendClient) Delete(ctx context.Context, token string, patientID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.BackendPathPatientFormat, patientID),
		Token:    token,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		c.Log.Error("patientBackendClient.Delete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func buildPatientResponse(raw backend_dto.Patient) responses.Patient {
	return responses.Patient{
		ID:          raw.ID,
		Name:        raw.Name,
		Email:       raw.Email,
		DateOfBirth: raw.DateOfBirth,
		HealthPlan:  raw.HealthPlan,
	}
}
