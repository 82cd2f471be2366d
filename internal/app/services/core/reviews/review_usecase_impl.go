package reviews

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reviewUsecase struct {
	ReviewBackendClient      contracts.ReviewBackendClient
	AppointmentBackendClient contracts.AppointmentBackendClient
	SessionService           contracts.SessionService
	Log                      *zap.Logger
}

var (
	reviewUsecaseInstance contracts.ReviewUsecase
	onceReviewUsecase     sync.Once
)

func NewReviewUsecase(
	reviewBackendClient contracts.ReviewBackendClient,
	appointmentBackendClient contracts.AppointmentBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ReviewUsecase {
	onceReviewUsecase.Do(func() {
		reviewUsecaseInstance = &reviewUsecase{
			ReviewBackendClient:      reviewBackendClient,
			AppointmentBackendClient: appointmentBackendClient,
			SessionService:           sessionService,
			Log:                      logger,
		}
	})
	return reviewUsecaseInstance
}

// ListReviewable joins the patient's completed consultations with any review
// already submitted for them, so a resubmission edits instead of duplicating.
func (uc *reviewUsecase) ListReviewable(ctx context.Context, sessionData string) ([]responses.ReviewableConsultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.ListReviewable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot review consultations", session.Role))
	}

	appointmentList, err := uc.AppointmentBackendClient.ListByPatient(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}
	buckets := appointments.Partition(appointmentList, time.Now())

	reviewList, err := uc.ReviewBackendClient.ListByPatient(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return nil, err
	}
	reviewByAppointment := make(map[int]responses.Review, len(reviewList))
	for _, review := range reviewList {
		reviewByAppointment[review.AppointmentID] = review
	}

	result := make([]responses.ReviewableConsultation, 0, len(buckets.Completed))
	for _, appointment := range buckets.Completed {
		item := responses.ReviewableConsultation{Appointment: appointment}
		if review, ok := reviewByAppointment[appointment.ID]; ok {
			existing := review
			item.Review = &existing
		}
		result = append(result, item)
	}

	uc.Log.Info("reviewUsecase.ListReviewable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

// Submit records a rating for a completed consultation belonging to the
// authenticated patient.
func (uc *reviewUsecase) Submit(ctx context.Context, sessionData string, request *requests.SubmitReview) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.IsPatient() {
		return exceptions.ErrNotMatchRole(fmt.Errorf("role %s cannot review consultations", session.Role))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	appointmentList, err := uc.AppointmentBackendClient.ListByPatient(ctx, session.BackendToken, session.UserID)
	if err != nil {
		return err
	}
	var target *responses.Appointment
	for i := range appointmentList {
		if appointmentList[i].ID == request.AppointmentID {
			target = &appointmentList[i]
			break
		}
	}
	if target == nil {
		return exceptions.ErrBackendNotFound(fmt.Errorf("appointment %d not found for patient %d", request.AppointmentID, session.UserID), constvars.ResourceAppointment)
	}
	if target.Status != models.AppointmentStatusCompleted {
		return exceptions.ErrReviewNotAllowed(fmt.Errorf("appointment %d has status %s", target.ID, target.Status))
	}

	err = uc.ReviewBackendClient.Submit(ctx, session.BackendToken, &backend_dto.Review{
		AppointmentID: request.AppointmentID,
		Rating:        request.Rating,
		Comment:       request.Comment,
	})
	if err != nil {
		uc.Log.Error("reviewUsecase.Submit backend rejected review",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("reviewUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}
