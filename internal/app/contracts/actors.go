package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/backend_dto"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type DoctorBackendClient interface {
	Register(ctx context.Context, request *backend_dto.RegisterDoctor) error
	FindByID(ctx context.Context, token string, doctorID int) (*responses.Doctor, error)
	List(ctx context.Context, token string) ([]responses.Doctor, error)
	Update(ctx context.Context, token string, doctorID int, request *backend_dto.UpdateDoctor) (*responses.Doctor, error)
	Delete(ctx context.Context, token string, doctorID int) error
}

type PatientBackendClient interface {
	Register(ctx context.Context, request *backend_dto.RegisterPatient) error
	FindByID(ctx context.Context, token string, patientID int) (*responses.Patient, error)
	Update(ctx context.Context, token string, patientID int, request *backend_dto.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, token string, patientID int) error
}

type DoctorUsecase interface {
	Search(ctx context.Context, sessionData string, filter *requests.DoctorSearch) ([]responses.Doctor, error)
	FindByID(ctx context.Context, sessionData string, doctorID int) (*responses.Doctor, error)
}

type ProfileUsecase interface {
	Get(ctx context.Context, sessionData string) (interface{}, error)
	UpdateDoctor(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
	UpdatePatient(ctx context.Context, sessionData string, request *requests.UpdatePatientProfile) (*responses.Patient, error)
	Delete(ctx context.Context, sessionData string) error
	UploadPicture(ctx context.Context, sessionData string, request *requests.UploadProfilePicture) (string, error)
}
