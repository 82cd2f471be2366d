package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
		}
	})
	return sessionServiceInstance
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrNotAuthenticated(fmt.Errorf("session already expired"))
	}

	key := fmt.Sprintf(constvars.SessionKeyFormat, session.SessionID)
	return svc.RedisRepository.Set(ctx, key, session, ttl)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.IsExpired(time.Now()) {
		return nil, exceptions.ErrNotAuthenticated(fmt.Errorf("session expired"))
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrNotAuthenticated(fmt.Errorf("session %s not found", sessionID))
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, key)
}
