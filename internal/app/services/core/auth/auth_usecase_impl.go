package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient    contracts.AuthBackendClient
	DoctorBackendClient  contracts.DoctorBackendClient
	PatientBackendClient contracts.PatientBackendClient
	SessionService       contracts.SessionService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthBackendClient:    authBackendClient,
			DoctorBackendClient:  doctorBackendClient,
			PatientBackendClient: patientBackendClient,
			SessionService:       sessionService,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	if role != constvars.RoleDoctor && role != constvars.RolePatient {
		return nil, exceptions.ErrInvalidRole(fmt.Errorf("unknown role %q", role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	loginResult, err := uc.AuthBackendClient.Login(ctx, role, &backend_dto.Login{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Login backend login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour)
	session := &models.Session{
		SessionID:    uuid.NewString(),
		UserID:       loginResult.ID,
		Role:         role,
		BackendToken: loginResult.Token,
		ExpiresAt:    expiresAt,
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expiresAt)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)
	return &responses.Login{
		Token:     token,
		UserID:    loginResult.ID,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *authUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	return uc.DoctorBackendClient.Register(ctx, &backend_dto.RegisterDoctor{
		Name:       request.Name,
		Email:      request.Email,
		Password:   request.Password,
		Speciality: request.Speciality,
		HealthPlan: request.HealthPlan,
	})
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	return uc.PatientBackendClient.Register(ctx, &backend_dto.RegisterPatient{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		DateOfBirth: request.DateOfBirth,
		HealthPlan:  request.HealthPlan,
	})
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
