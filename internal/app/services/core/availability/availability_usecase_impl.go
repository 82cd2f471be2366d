package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	SessionService           contracts.SessionService
	RedisRepository          contracts.RedisRepository
	CacheTTL                 time.Duration
	Log                      *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	sessionService contracts.SessionService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			AppointmentBackendClient: appointmentBackendClient,
			SessionService:           sessionService,
			RedisRepository:          redisRepository,
			CacheTTL:                 time.Duration(internalConfig.Backend.AvailabilityCacheTTLSeconds) * time.Second,
			Log:                      logger,
		}
	})
	return availabilityUsecaseInstance
}

// Resolve answers which slots remain bookable for a doctor on a date. A past
// date short-circuits to an empty result, a transport failure degrades to the
// waiting-list path instead of blocking the booking flow entirely.
func (uc *availabilityUsecase) Resolve(ctx context.Context, sessionData string, request *requests.Availability) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	date, err := utils.ParseLocalDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if utils.IsPastDate(date, time.Now()) {
		uc.Log.Info("availabilityUsecase.Resolve rejected past date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, request.Date),
		)
		return &responses.Availability{AvailableTimes: []string{}, HasAvailability: false}, nil
	}

	cacheKey := fmt.Sprintf(constvars.AvailabilityCacheKeyFormat, request.DoctorID, request.Date)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var result responses.Availability
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			uc.Log.Info("availabilityUsecase.Resolve served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return &result, nil
		}
	}

	result, err := uc.AppointmentBackendClient.AvailableTimes(ctx, session.BackendToken, request.DoctorID, request.Date)
	if err != nil {
		if isTransportFailure(err) {
			uc.Log.Warn("availabilityUsecase.Resolve backend unreachable, degrading to waiting list",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return &responses.Availability{AvailableTimes: []string{}, HasAvailability: false}, nil
		}
		return nil, err
	}

	if cacheErr := uc.RedisRepository.Set(ctx, cacheKey, result, uc.CacheTTL); cacheErr != nil {
		uc.Log.Warn("availabilityUsecase.Resolve failed to cache result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(cacheErr),
		)
	}

	uc.Log.Info("availabilityUsecase.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result.AvailableTimes)),
	)
	return result, nil
}

// Invalidate drops the cached slots for a doctor and date, called after any
// mutation that could change them.
func (uc *availabilityUsecase) Invalidate(ctx context.Context, doctorID int, date string) error {
	cacheKey := fmt.Sprintf(constvars.AvailabilityCacheKeyFormat, doctorID, date)
	return uc.RedisRepository.Delete(ctx, cacheKey)
}

func isTransportFailure(err error) bool {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode == constvars.StatusBadGateway ||
			customErr.StatusCode == constvars.StatusGatewayTimeout ||
			customErr.StatusCode == constvars.StatusServiceUnavailable
	}
	return false
}
