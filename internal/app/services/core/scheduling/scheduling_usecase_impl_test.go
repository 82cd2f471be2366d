package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(appointmentClient *fakeAppointmentClient, doctorClient *fakeDoctorClient, patientClient *fakePatientClient, sessionService *fakeSessionService) (*schedulingUsecase, *fakeAvailabilityUsecase, *fakeNotifier) {
	availability := &fakeAvailabilityUsecase{}
	notifierService := &fakeNotifier{}
	uc := &schedulingUsecase{
		AppointmentBackendClient: appointmentClient,
		DoctorBackendClient:      doctorClient,
		PatientBackendClient:     patientClient,
		SessionService:           sessionService,
		AvailabilityUsecase:      availability,
		NotifierService:          notifierService,
		Log:                      zap.NewNop(),
	}
	return uc, availability, notifierService
}

func TestBook(t *testing.T) {
	t.Run("with availability submits the selected slot", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{
			createResult: &responses.Appointment{ID: 1, DoctorID: 9, PatientID: 42, Date: "2025-03-10", Time: "10:00"},
		}
		uc, availability, notifierService := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		outcome, err := uc.Book(context.Background(), "{}", &requests.BookAppointment{
			DoctorID:        9,
			Date:            "2025-03-10",
			Time:            "10:00",
			HasAvailability: true,
		})
		require.NoError(t, err)

		assert.Equal(t, responses.BookingOutcomeBooked, outcome.Outcome)
		require.NotNil(t, appointmentClient.createRequest)
		require.NotNil(t, appointmentClient.createRequest.Time)
		assert.Equal(t, "10:00", *appointmentClient.createRequest.Time)
		assert.False(t, appointmentClient.createRequest.AcceptWaitingList)
		assert.Equal(t, 42, appointmentClient.createRequest.PatientID)
		assert.Equal(t, []string{"2025-03-10"}, availability.invalidated)
		require.Len(t, notifierService.events, 1)
		assert.Equal(t, constvars.NotificationEventBookingConfirmed, notifierService.events[0].Event)
	})

	t.Run("without availability joins the waiting list and discards stray time", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{
			createResult: &responses.Appointment{ID: 2, DoctorID: 9, PatientID: 42, Date: "2025-03-10", WaitingList: true},
		}
		uc, _, notifierService := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		outcome, err := uc.Book(context.Background(), "{}", &requests.BookAppointment{
			DoctorID:        9,
			Date:            "2025-03-10",
			Time:            "10:00",
			HasAvailability: false,
		})
		require.NoError(t, err)

		assert.Equal(t, responses.BookingOutcomeWaitlisted, outcome.Outcome)
		assert.Nil(t, appointmentClient.createRequest.Time)
		assert.True(t, appointmentClient.createRequest.AcceptWaitingList)
		require.Len(t, notifierService.events, 1)
		assert.Equal(t, constvars.NotificationEventBookingWaitlisted, notifierService.events[0].Event)
	})

	t.Run("availability without a selected time fails before any network call", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{}
		uc, _, _ := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		_, err := uc.Book(context.Background(), "{}", &requests.BookAppointment{
			DoctorID:        9,
			Date:            "2025-03-10",
			HasAvailability: true,
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Nil(t, appointmentClient.createRequest)
	})

	t.Run("doctors cannot book", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeAppointmentClient{}, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: doctorSession()})

		_, err := uc.Book(context.Background(), "{}", &requests.BookAppointment{
			DoctorID: 9,
			Date:     "2025-03-10",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("slot conflict surfaces as a distinct 409", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{
			createErr: exceptions.ErrSlotTaken(fmt.Errorf("conflict")),
		}
		uc, _, notifierService := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		_, err := uc.Book(context.Background(), "{}", &requests.BookAppointment{
			DoctorID:        9,
			Date:            "2025-03-10",
			Time:            "10:00",
			HasAvailability: true,
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, notifierService.events)
	})
}

func TestComplete(t *testing.T) {
	activeAppointment := responses.Appointment{
		ID:       1,
		DoctorID: 7,

		PatientID: 42,
		Date:      "2025-03-10",
		Status:    models.AppointmentStatusConfirmed,
	}

	t.Run("blank notes are rejected before any network call", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{}
		uc, _, _ := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: doctorSession()})

		err := uc.Complete(context.Background(), "{}", 1, &requests.CompleteAppointment{ConsultationNotes: "   "})
		require.Error(t, err)
		assert.Nil(t, appointmentClient.completeRequest)
	})

	t.Run("covered visit always completes with a zero fee", func(t *testing.T) {
		fee := 150.0
		appointmentClient := &fakeAppointmentClient{listByDoctorResult: []responses.Appointment{activeAppointment}}
		doctorClient := &fakeDoctorClient{doctor: &responses.Doctor{ID: 7, HealthPlan: "Unimed"}}
		patientClient := &fakePatientClient{patient: &responses.Patient{ID: 42, HealthPlan: "unimed "}}
		uc, _, _ := newTestUsecase(appointmentClient, doctorClient, patientClient, &fakeSessionService{session: doctorSession()})

		err := uc.Complete(context.Background(), "{}", 1, &requests.CompleteAppointment{
			ConsultationNotes: "routine checkup",
			ConsultationFee:   &fee,
		})
		require.NoError(t, err)

		require.NotNil(t, appointmentClient.completeRequest)
		assert.Equal(t, 0.0, appointmentClient.completeRequest.ConsultationFee)
	})

	t.Run("uncovered visit keeps the entered fee", func(t *testing.T) {
		fee := 150.0
		appointmentClient := &fakeAppointmentClient{listByDoctorResult: []responses.Appointment{activeAppointment}}
		doctorClient := &fakeDoctorClient{doctor: &responses.Doctor{ID: 7, HealthPlan: "Unimed"}}
		patientClient := &fakePatientClient{patient: &responses.Patient{ID: 42, HealthPlan: "Amil"}}
		uc, _, _ := newTestUsecase(appointmentClient, doctorClient, patientClient, &fakeSessionService{session: doctorSession()})

		err := uc.Complete(context.Background(), "{}", 1, &requests.CompleteAppointment{
			ConsultationNotes: "routine checkup",
			ConsultationFee:   &fee,
		})
		require.NoError(t, err)
		assert.Equal(t, 150.0, appointmentClient.completeRequest.ConsultationFee)
	})

	t.Run("terminal appointments cannot be completed again", func(t *testing.T) {
		completed := activeAppointment
		completed.Status = models.AppointmentStatusCompleted
		appointmentClient := &fakeAppointmentClient{listByDoctorResult: []responses.Appointment{completed}}
		uc, _, _ := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: doctorSession()})

		err := uc.Complete(context.Background(), "{}", 1, &requests.CompleteAppointment{ConsultationNotes: "notes"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Nil(t, appointmentClient.completeRequest)
	})

	t.Run("patients cannot complete", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeAppointmentClient{}, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		err := uc.Complete(context.Background(), "{}", 1, &requests.CompleteAppointment{ConsultationNotes: "notes"})
		require.Error(t, err)
	})
}

func TestCancel(t *testing.T) {
	appointment := responses.Appointment{ID: 3, DoctorID: 9, PatientID: 42, Date: "2025-03-12", Status: models.AppointmentStatusConfirmed}

	t.Run("cancellation invalidates the availability cache and emits an event", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{listByPatientResult: []responses.Appointment{appointment}}
		uc, availability, notifierService := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		err := uc.Cancel(context.Background(), "{}", 3)
		require.NoError(t, err)

		assert.Equal(t, 1, appointmentClient.cancelCalls)
		assert.Equal(t, []string{"2025-03-12"}, availability.invalidated)
		require.Len(t, notifierService.events, 1)
		assert.Equal(t, constvars.NotificationEventAppointmentCancelled, notifierService.events[0].Event)
	})

	t.Run("cancellation proceeds even when the record cannot be located", func(t *testing.T) {
		appointmentClient := &fakeAppointmentClient{}
		uc, availability, notifierService := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		err := uc.Cancel(context.Background(), "{}", 99)
		require.NoError(t, err)

		assert.Equal(t, 1, appointmentClient.cancelCalls)
		assert.Empty(t, availability.invalidated)
		assert.Empty(t, notifierService.events)
	})

	t.Run("backend rejection is surfaced unchanged", func(t *testing.T) {
		backendErr := exceptions.ErrBackendMessage(constvars.StatusUnprocessableEntity, "appointment already cancelled")
		appointmentClient := &fakeAppointmentClient{cancelErr: backendErr}
		uc, _, _ := newTestUsecase(appointmentClient, &fakeDoctorClient{}, &fakePatientClient{}, &fakeSessionService{session: patientSession()})

		err := uc.Cancel(context.Background(), "{}", 3)
		assert.Equal(t, backendErr, err)
	})
}
