package requests

type BookAppointment struct {
	DoctorID int    `json:"doctorId" validate:"required,gte=1"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	// Time is required only while availability exists; when the waiting-list
	// path is taken any stray selection is discarded before submission.
	Time            string `json:"time" validate:"omitempty,time_hhmm"`
	Type            string `json:"type" validate:"omitempty,oneof=consulta retorno exame preventiva"`
	HasAvailability bool   `json:"hasAvailability"`
}

type CompleteAppointment struct {
	ConsultationNotes string   `json:"consultationNotes"`
	ConsultationFee   *float64 `json:"consultationFee" validate:"omitempty,gte=0"`
}

type Availability struct {
	DoctorID int    `json:"doctorId" validate:"required,gte=1"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}
