package backend_dto

// Appointment is the raw record as the platform backend returns it. Status
// casing and the time representation vary on the wire; normalization into the
// canonical response shape happens in the backend client and nowhere else.
type Appointment struct {
	ID                int      `json:"id"`
	DoctorID          int      `json:"doctorId"`
	PatientID         int      `json:"patientId"`
	Date              string   `json:"date"`
	Time              FlexTime `json:"time"`
	Type              string   `json:"type"`
	Status            string   `json:"status"`
	WaitingList       bool     `json:"waitingList"`
	ConsultationNotes string   `json:"consultationNotes"`
	ConsultationFee   *float64 `json:"consultationFee"`
	PatientName       string   `json:"patientName"`
	DoctorName        string   `json:"doctorName"`
	Speciality        string   `json:"speciality"`
}

type CreateAppointment struct {
	DoctorID          int     `json:"doctorId"`
	PatientID         int     `json:"patientId"`
	Date              string  `json:"date"`
	Time              *string `json:"time"`
	Type              string  `json:"type,omitempty"`
	AcceptWaitingList bool    `json:"acceptWaitingList"`
}

type CompleteAppointment struct {
	ConsultationNotes string  `json:"consultationNotes"`
	ConsultationFee   float64 `json:"consultationFee"`
}

type AvailableTimesQuery struct {
	DoctorID int    `json:"doctorId"`
	Date     string `json:"date"`
}

type AvailableTimes struct {
	AvailableTimes  []FlexTime `json:"availableTimes"`
	HasAvailability bool       `json:"hasAvailability"`
}
