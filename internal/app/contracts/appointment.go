package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type AppointmentBackendClient interface {
	ListByDoctor(ctx context.Context, token string, doctorID int) ([]responses.Appointment, error)
	ListByPatient(ctx context.Context, token string, patientID int) ([]responses.Appointment, error)
	Create(ctx context.Context, token string, request *backend_dto.CreateAppointment) (*responses.Appointment, error)
	Complete(ctx context.Context, token string, appointmentID int, request *backend_dto.CompleteAppointment) error
	Cancel(ctx context.Context, token string, appointmentID int) error
	AvailableTimes(ctx context.Context, token string, doctorID int, date string) (*responses.Availability, error)
}

type SchedulingUsecase interface {
	Book(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.BookingOutcome, error)
	Complete(ctx context.Context, sessionData string, appointmentID int, request *requests.CompleteAppointment) error
	Cancel(ctx context.Context, sessionData string, appointmentID int) error
}

type AvailabilityUsecase interface {
	Resolve(ctx context.Context, sessionData string, request *requests.Availability) (*responses.Availability, error)
	Invalidate(ctx context.Context, doctorID int, date string) error
}

type DashboardUsecase interface {
	DoctorDashboard(ctx context.Context, sessionData string) (*responses.DoctorDashboard, error)
	PatientDashboard(ctx context.Context, sessionData string) (*responses.PatientDashboard, error)
}
