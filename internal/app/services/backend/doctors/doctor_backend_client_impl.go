package doctors

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
	doctorBackendClientInstance contracts.DoctorBackendClient
	onceDoctorBackendClient     sync.Once
)

type doctorBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewDoctorBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.DoctorBackendClient {
	onceDoctorBackendClient.Do(func() {
		doctorBackendClientInstance = &doctorBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return doctorBackendClientInstance
}

func (c *doctorBackendClient) Register(ctx context.Context, request *backend_dto.RegisterDoctor) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathRegisterDoctor,
		Body:     request,
		Resource: constvars.ResourceDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.Register error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("doctorBackendClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *doctorBackendClient) FindByID(ctx context.Context, token string, doctorID int) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	var raw backend_dto.Doctor
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathDoctorFormat, doctorID),
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourceDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.FindByID error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildDoctorResponse(raw)
	return &result, nil
}

func (c *doctorBackendClient) List(ctx context.Context, token string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var raw []backend_dto.Doctor
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathDoctorList,
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourceDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.List error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(raw))
	for _, doctor := range raw {
		result = append(result, buildDoctorResponse(doctor))
	}

	c.Log.Info("doctorBackendClient.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (c *doctorBackendClient) Update(ctx context.Context, token string, doctorID int, request *backend_dto.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	var raw backend_dto.Doctor
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathDoctorFormat, doctorID),
		Token:    token,
		Body:     request,
		Out:      &raw,
		Resource: constvars.ResourceDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.Update error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := buildDoctorResponse(raw)
	return &result, nil
}

func (c *doctorBackendClient) Delete(ctx context.Context, token string, doctorID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.BackendPathDoctorFormat, doctorID),
		Token:    token,
		Resource: constvars.ResourceDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.Delete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func buildDoctorResponse(raw backend_dto.Doctor) responses.Doctor {
	return responses.Doctor{
		ID:         raw.ID,
		Name:       raw.Name,
		Email:      raw.Email,
		Speciality: raw.Speciality,
		HealthPlan: raw.HealthPlan,
		Rating:     raw.Rating,
		Reviews:    raw.Reviews,
	}
}
