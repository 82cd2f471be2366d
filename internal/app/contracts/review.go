package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type ReviewBackendClient interface {
	ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Review, error)
	Submit(ctx context.Context, token string, request *backend_dto.Review) error
}

type ReviewUsecase interface {
	ListReviewable(ctx context.Context, sessionData string) ([]responses.ReviewableConsultation, error)
	Submit(ctx context.Context, sessionData string, request *requests.SubmitReview) error
}
