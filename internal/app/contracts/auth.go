package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type AuthBackendClient interface {
	Login(ctx context.Context, role string, request *backend_dto.Login) (*backend_dto.LoginResult, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error)
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) error
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) error
	Logout(ctx context.Context, sessionData string) error
}
