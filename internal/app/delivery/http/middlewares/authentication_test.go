package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessionData string
	err         error
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return f.sessionData, f.err
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{JWT: config.AppJWT{Secret: secret}}

	newHandler := func(sessionService *fakeSessionService, captured *string) http.Handler {
		m := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)
		return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			*captured = sessionData
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("valid token injects session data into context", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		var captured string
		handler := newHandler(&fakeSessionService{sessionData: `{"SessionID":"sess-1"}`}, &captured)

		req := httptest.NewRequest("GET", "/v1/dashboard/patient", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"SessionID":"sess-1"}`, captured)
	})

	t.Run("missing header is rejected with 401", func(t *testing.T) {
		var captured string
		handler := newHandler(&fakeSessionService{}, &captured)

		req := httptest.NewRequest("GET", "/v1/dashboard/patient", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, captured)
	})

	t.Run("malformed token is rejected with 401", func(t *testing.T) {
		var captured string
		handler := newHandler(&fakeSessionService{}, &captured)

		req := httptest.NewRequest("GET", "/v1/dashboard/patient", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"not-a-jwt")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, captured)
	})

	t.Run("expired token is rejected with 401", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", secret, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		var captured string
		handler := newHandler(&fakeSessionService{}, &captured)

		req := httptest.NewRequest("GET", "/v1/dashboard/patient", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing session in redis is rejected with 401", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-gone", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		var captured string
		sessionService := &fakeSessionService{err: exceptions.ErrNotAuthenticated(fmt.Errorf("session sess-gone not found"))}
		handler := newHandler(sessionService, &captured)

		req := httptest.NewRequest("GET", "/v1/dashboard/patient", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
