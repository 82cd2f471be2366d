package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentClient struct {
	availableTimesResult *responses.Availability
	availableTimesErr    error
	calls                int
}

func (f *fakeAppointmentClient) ListByDoctor(ctx context.Context, token string, doctorID int) ([]responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) Create(ctx context.Context, token string, request *backend_dto.CreateAppointment) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) Complete(ctx context.Context, token string, appointmentID int, request *backend_dto.CompleteAppointment) error {
	return nil
}

func (f *fakeAppointmentClient) Cancel(ctx context.Context, token string, appointmentID int) error {
	return nil
}

func (f *fakeAppointmentClient) AvailableTimes(ctx context.Context, token string, doctorID int, date string) (*responses.Availability, error) {
	f.calls++
	return f.availableTimesResult, f.availableTimesErr
}

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}}
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func newTestUsecase(client *fakeAppointmentClient, redis *fakeRedis) *availabilityUsecase {
	session := &models.Session{UserID: 42, Role: "patient", BackendToken: "token", ExpiresAt: time.Now().Add(time.Hour)}
	return &availabilityUsecase{
		AppointmentBackendClient: client,
		SessionService:           &fakeSessionService{session: session},
		RedisRepository:          redis,
		CacheTTL:                 time.Minute,
		Log:                      zap.NewNop(),
	}
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestResolve(t *testing.T) {
	t.Run("past date yields empty result without a backend call", func(t *testing.T) {
		client := &fakeAppointmentClient{}
		uc := newTestUsecase(client, newFakeRedis())

		result, err := uc.Resolve(context.Background(), "{}", &requests.Availability{DoctorID: 9, Date: "2020-01-01"})
		require.NoError(t, err)

		assert.Empty(t, result.AvailableTimes)
		assert.False(t, result.HasAvailability)
		assert.Equal(t, 0, client.calls)
	})

	t.Run("backend result is returned and cached", func(t *testing.T) {
		client := &fakeAppointmentClient{
			availableTimesResult: &responses.Availability{AvailableTimes: []string{"09:00", "10:00"}, HasAvailability: true},
		}
		redis := newFakeRedis()
		uc := newTestUsecase(client, redis)

		result, err := uc.Resolve(context.Background(), "{}", &requests.Availability{DoctorID: 9, Date: futureDate()})
		require.NoError(t, err)

		assert.Equal(t, []string{"09:00", "10:00"}, result.AvailableTimes)
		assert.True(t, result.HasAvailability)
		assert.Len(t, redis.store, 1)
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		client := &fakeAppointmentClient{
			availableTimesResult: &responses.Availability{AvailableTimes: []string{"09:00"}, HasAvailability: true},
		}
		uc := newTestUsecase(client, newFakeRedis())
		request := &requests.Availability{DoctorID: 9, Date: futureDate()}

		_, err := uc.Resolve(context.Background(), "{}", request)
		require.NoError(t, err)
		result, err := uc.Resolve(context.Background(), "{}", request)
		require.NoError(t, err)

		assert.Equal(t, 1, client.calls)
		assert.Equal(t, []string{"09:00"}, result.AvailableTimes)
	})

	t.Run("transport failure degrades to the waiting-list path", func(t *testing.T) {
		client := &fakeAppointmentClient{
			availableTimesErr: exceptions.ErrSendHTTPRequest(fmt.Errorf("connection refused")),
		}
		uc := newTestUsecase(client, newFakeRedis())

		result, err := uc.Resolve(context.Background(), "{}", &requests.Availability{DoctorID: 9, Date: futureDate()})
		require.NoError(t, err)

		assert.Empty(t, result.AvailableTimes)
		assert.False(t, result.HasAvailability)
	})

	t.Run("non-transport backend errors propagate", func(t *testing.T) {
		client := &fakeAppointmentClient{
			availableTimesErr: exceptions.ErrBackendNotFound(fmt.Errorf("no doctor"), "doctor"),
		}
		uc := newTestUsecase(client, newFakeRedis())

		_, err := uc.Resolve(context.Background(), "{}", &requests.Availability{DoctorID: 9, Date: futureDate()})
		assert.Error(t, err)
	})
}

func TestInvalidate(t *testing.T) {
	client := &fakeAppointmentClient{
		availableTimesResult: &responses.Availability{AvailableTimes: []string{"09:00"}, HasAvailability: true},
	}
	redis := newFakeRedis()
	uc := newTestUsecase(client, redis)
	date := futureDate()

	_, err := uc.Resolve(context.Background(), "{}", &requests.Availability{DoctorID: 9, Date: date})
	require.NoError(t, err)
	require.Len(t, redis.store, 1)

	require.NoError(t, uc.Invalidate(context.Background(), 9, date))
	assert.Empty(t, redis.store)
}
