package scheduling

import (
	"context"
	"time"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type fakeAppointmentClient struct {
	createRequest *backend_dto.CreateAppointment
	createResult  *responses.Appointment
	createErr     error

	completeRequest *backend_dto.CompleteAppointment
	completeErr     error

	cancelCalls int
	cancelErr   error

	listByDoctorResult  []responses.Appointment
	listByPatientResult []responses.Appointment
	listErr             error
}

func (f *fakeAppointmentClient) ListByDoctor(ctx context.Context, token string, doctorID int) ([]responses.Appointment, error) {
	return f.listByDoctorResult, f.listErr
}

func (f *fakeAppointmentClient) ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Appointment, error) {
	return f.listByPatientResult, f.listErr
}

func (f *fakeAppointmentClient) Create(ctx context.Context, token string, request *backend_dto.CreateAppointment) (*responses.Appointment, error) {
	f.createRequest = request
	return f.createResult, f.createErr
}

func (f *fakeAppointmentClient) Complete(ctx context.Context, token string, appointmentID int, request *backend_dto.CompleteAppointment) error {
	f.completeRequest = request
	return f.completeErr
}

func (f *fakeAppointmentClient) Cancel(ctx context.Context, token string, appointmentID int) error {
	f.cancelCalls++
	return f.cancelErr
}

func (f *fakeAppointmentClient) AvailableTimes(ctx context.Context, token string, doctorID int, date string) (*responses.Availability, error) {
	return nil, nil
}

type fakeDoctorClient struct {
	doctor *responses.Doctor
	err    error
}

func (f *fakeDoctorClient) Register(ctx context.Context, request *backend_dto.RegisterDoctor) error {
	return nil
}

func (f *fakeDoctorClient) FindByID(ctx context.Context, token string, doctorID int) (*responses.Doctor, error) {
	return f.doctor, f.err
}

func (f *fakeDoctorClient) List(ctx context.Context, token string) ([]responses.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorClient) Update(ctx context.Context, token string, doctorID int, request *backend_dto.UpdateDoctor) (*responses.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorClient) Delete(ctx context.Context, token string, doctorID int) error {
	return nil
}

type fakePatientClient struct {
	patient *responses.Patient
	err     error
}

func (f *fakePatientClient) Register(ctx context.Context, request *backend_dto.RegisterPatient) error {
	return nil
}

func (f *fakePatientClient) FindByID(ctx context.Context, token string, patientID int) (*responses.Patient, error) {
	return f.patient, f.err
}

func (f *fakePatientClient) Update(ctx context.Context, token string, patientID int, request *backend_dto.UpdatePatient) (*responses.Patient, error) {
	return nil, nil
}

func (f *fakePatientClient) Delete(ctx context.Context, token string, patientID int) error {
	return nil
}

type fakeSessionService struct {
	session *models.Session
	err     error
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return f.session, f.err
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeAvailabilityUsecase struct {
	invalidated []string
}

func (f *fakeAvailabilityUsecase) Resolve(ctx context.Context, sessionData string, request *requests.Availability) (*responses.Availability, error) {
	return nil, nil
}

func (f *fakeAvailabilityUsecase) Invalidate(ctx context.Context, doctorID int, date string) error {
	f.invalidated = append(f.invalidated, date)
	return nil
}

type fakeNotifier struct {
	events []*requests.NotificationEvent
	err    error
}

func (f *fakeNotifier) Publish(ctx context.Context, event *requests.NotificationEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func patientSession() *models.Session {
	return &models.Session{
		SessionID:    "sess-1",
		UserID:       42,
		Role:         "patient",
		BackendToken: "backend-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func doctorSession() *models.Session {
	return &models.Session{
		SessionID:    "sess-2",
		UserID:       7,
		Role:         "doctor",
		BackendToken: "backend-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}
