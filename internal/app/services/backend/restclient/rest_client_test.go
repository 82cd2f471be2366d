package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		BaseUrl:    server.URL,
		HttpClient: &http.Client{Timeout: 5 * time.Second},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func customErrorFrom(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr
}

func TestCall(t *testing.T) {
	t.Run("2xx decodes the response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token-1", r.Header.Get(constvars.HeaderAuthorization))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": 7}`))
		}))
		defer server.Close()

		var out struct {
			ID int `json:"id"`
		}
		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodGet,
			Path:     "/api/doctor/7",
			Token:    "token-1",
			Out:      &out,
			Resource: constvars.ResourceDoctor,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, out.ID)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodGet,
			Path:     "/api/doctor/999",
			Resource: constvars.ResourceDoctor,
		})
		assert.Equal(t, constvars.StatusNotFound, customErrorFrom(t, err).StatusCode)
	})

	t.Run("409 maps to slot conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodPost,
			Path:     "/api/appointments",
			Resource: constvars.ResourceAppointment,
		})
		customErr := customErrorFrom(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotTaken, customErr.ClientMessage)
	})

	t.Run("error body message is surfaced verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message": "appointment already cancelled"}`))
		}))
		defer server.Close()

		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodDelete,
			Path:     "/api/appointments/3",
			Resource: constvars.ResourceAppointment,
		})
		customErr := customErrorFrom(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "appointment already cancelled", customErr.ClientMessage)
	})

	t.Run("undecodable error body falls back to a generic failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()

		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodGet,
			Path:     "/api/doctor",
			Resource: constvars.ResourceDoctor,
		})
		customErr := customErrorFrom(t, err)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("unreachable backend maps to a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		err := newTestClient(server).Call(context.Background(), &CallInput{
			Method:   constvars.MethodGet,
			Path:     "/api/doctor",
			Resource: constvars.ResourceDoctor,
		})
		assert.Equal(t, constvars.StatusBadGateway, customErrorFrom(t, err).StatusCode)
	})
}
