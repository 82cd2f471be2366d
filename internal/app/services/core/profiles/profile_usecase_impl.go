package profiles

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileUsecase struct {
	DoctorBackendClient  contracts.DoctorBackendClient
	PatientBackendClient contracts.PatientBackendClient
	SessionService       contracts.SessionService
	Storage              contracts.Storage
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	doctorBackendClient contracts.DoctorBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	sessionService contracts.SessionService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			DoctorBackendClient:  doctorBackendClient,
			PatientBackendClient: patientBackendClient,
			SessionService:       sessionService,
			Storage:              storage,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return profileUsecaseInstance
}

// Get returns the authenticated actor's own profile, shaped by role.
func (uc *profileUsecase) Get(ctx context.Context, sessionData string) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if session.IsDoctor() {
		return uc.DoctorBackendClient.FindByID(ctx, session.BackendToken, session.UserID)
	}

	patient, err := uc.PatientBackendClient.FindByID(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}
	patient.Age = utils.CalculateAge(patient.DateOfBirth, time.Now())
	return patient, nil
}

func (uc *profileUsecase) UpdateDoctor(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot update a doctor profile", session.Role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return uc.DoctorBackendClient.Update(ctx, session.BackendToken, session.UserID, &backend_dto.UpdateDoctor{
		Name:       request.Name,
		Speciality: request.Speciality,
		HealthPlan: request.HealthPlan,
	})
}

func (uc *profileUsecase) UpdatePatient(ctx context.Context, sessionData string, request *requests.UpdatePatientProfile) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot update a patient profile", session.Role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientBackendClient.Update(ctx, session.BackendToken, session.UserID, &backend_dto.UpdatePatient{
		Name:        request.Name,
		DateOfBirth: request.DateOfBirth,
		HealthPlan:  request.HealthPlan,
	})
	if err != nil {
		return nil, err
	}
	patient.Age = utils.CalculateAge(patient.DateOfBirth, time.Now())
	return patient, nil
}

// Delete removes the actor's own account on the backend and drops the
// session, so the credential stops working immediately.
func (uc *profileUsecase) Delete(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if session.IsDoctor() {
		err = uc.DoctorBackendClient.Delete(ctx, session.BackendToken, session.UserID)
	} else {
		err = uc.PatientBackendClient.Delete(ctx, session.BackendToken, session.UserID)
	}
	if err != nil {
		return err
	}

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *profileUsecase) UploadPicture(ctx context.Context, sessionData string, request *requests.UploadProfilePicture) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadPicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return "", err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	imageData, err := base64.StdEncoding.DecodeString(request.ImageBase64)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	maxBytes := uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if int64(len(imageData)) > maxBytes {
		return "", exceptions.ErrImageValidation(fmt.Errorf("image exceeds %dMB limit", uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB))
	}

	objectName := fmt.Sprintf(constvars.ProfilePictureObjectFormat, session.Role, session.UserID, request.FileExtension)
	uploaded, err := uc.Storage.UploadBase64Image(ctx, imageData, uc.InternalConfig.Minio.BucketName, objectName, request.FileExtension)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadPicture error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("profileUsecase.UploadPicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, uploaded),
	)
	return uploaded, nil
}
