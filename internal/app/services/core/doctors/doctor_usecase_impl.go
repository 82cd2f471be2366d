package doctors

import (
	"context"
	"strings"
	"sync"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorBackendClient contracts.DoctorBackendClient
	SessionService      contracts.SessionService
	Log                 *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorBackendClient contracts.DoctorBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorBackendClient: doctorBackendClient,
			SessionService:      sessionService,
			Log:                 logger,
		}
	})
	return doctorUsecaseInstance
}

// Search lists doctors matching the filter. The backend exposes only a full
// listing, so name, speciality and plan filtering happens here, all matches
// case-insensitive substring on trimmed input.
func (uc *doctorUsecase) Search(ctx context.Context, sessionData string, filter *requests.DoctorSearch) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.DoctorBackendClient.List(ctx, session.BackendToken)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if matchesFilter(doctor, filter) {
			result = append(result, doctor)
		}
	}

	uc.Log.Info("doctorUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, sessionData string, doctorID int) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return uc.DoctorBackendClient.FindByID(ctx, session.BackendToken, doctorID)
}

func matchesFilter(doctor responses.Doctor, filter *requests.DoctorSearch) bool {
	if filter == nil {
		return true
	}
	return containsFold(doctor.Name, filter.Name) &&
		containsFold(doctor.Speciality, filter.Speciality) &&
		containsFold(doctor.HealthPlan, filter.HealthPlan)
}

func containsFold(value, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
