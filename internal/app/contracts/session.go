package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}
