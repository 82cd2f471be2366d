package reviews

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
	reviewBackendClientInstance contracts.ReviewBackendClient
	onceReviewBackendClient     sync.Once
)

type reviewBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewReviewBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.ReviewBackendClient {
	onceReviewBackendClient.Do(func() {
		reviewBackendClientInstance = &reviewBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return reviewBackendClientInstance
}

func (c *reviewBackendClient) ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("reviewBackendClient.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	var raw []backend_dto.Review
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathReviewsByPatientQuery, patientID),
		Token:    token,
		Out:      &raw,
		Resource: constvars.ResourceReview,
	})
	if err != nil {
		c.Log.Error("reviewBackendClient.ListByPatient error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Review, 0, len(raw))
	for _, review := range raw {
		result = append(result, responses.Review{
			AppointmentID: review.AppointmentID,
			Rating:        review.Rating,
			Comment:       review.Comment,
		})
	}

	c.Log.Info("reviewBackendClient.ListByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (c *reviewBackendClient) Submit(ctx context.Context, token string, request *backend_dto.Review) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("reviewBackendClient.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathReviews,
		Token:    token,
		Body:     request,
		Resource: constvars.ResourceReview,
	})
	if err != nil {
		c.Log.Error("reviewBackendClient.Submit error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("reviewBackendClient.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}
