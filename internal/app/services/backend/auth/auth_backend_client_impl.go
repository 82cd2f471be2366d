package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/services/backend/restclient"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	authBackendClientInstance contracts.AuthBackendClient
	onceAuthBackendClient     sync.Once
)

type authBackendClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewAuthBackendClient(rest *restclient.Client, logger *zap.Logger) contracts.AuthBackendClient {
	onceAuthBackendClient.Do(func() {
		authBackendClientInstance = &authBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return authBackendClientInstance
}

func (c *authBackendClient) Login(ctx context.Context, role string, request *backend_dto.Login) (*backend_dto.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	var result backend_dto.LoginResult
	err := c.Rest.Call(ctx, &restclient.CallInput{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf(constvars.BackendPathLoginFormat, role),
		Body:     request,
		Out:      &result,
		Resource: constvars.ResourceAuth,
	})
	if err != nil {
		c.Log.Error("authBackendClient.Login error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		// The backend signals a bad credential pair with 401; everything
		// else stays a transport or remote failure.
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return nil, exceptions.ErrInvalidEmailOrPassword(err)
		}
		return nil, err
	}

	c.Log.Info("authBackendClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)
	return &result, nil
}
