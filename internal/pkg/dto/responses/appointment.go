package responses

import "mediconnect-service/internal/app/models"

// Appointment is the canonical appointment shape used by all business logic.
// Time is always "HH:MM", Status is upper-cased canonical.
type Appointment struct {
	ID                int                  `json:"id"`
	DoctorID          int                  `json:"doctorId"`
	PatientID         int                  `json:"patientId"`
	Date              string               `json:"date"`
	Time              string               `json:"time,omitempty"`
	Type              string               `json:"type,omitempty"`
	Status            string               `json:"status"`
	WaitingList       bool                 `json:"waitingList"`
	ConsultationNotes string               `json:"consultationNotes,omitempty"`
	ConsultationFee   *float64             `json:"consultationFee,omitempty"`
	PatientName       string               `json:"patientName,omitempty"`
	DoctorName        string               `json:"doctorName,omitempty"`
	Speciality        string               `json:"speciality,omitempty"`
	DisplayStatus     models.DisplayStatus `json:"displayStatus,omitempty"`

	// Best-effort enrichment; placeholders when the lookup fails.
	PatientAge        int    `json:"patientAge,omitempty"`
	PatientHealthPlan string `json:"patientHealthPlan,omitempty"`
}

const (
	BookingOutcomeBooked     = "booked"
	BookingOutcomeWaitlisted = "waitlisted"
)

// BookingOutcome distinguishes a confirmed booking from a waiting-list entry
// so the caller can present the matching confirmation message.
type BookingOutcome struct {
	Outcome     string      `json:"outcome"`
	Appointment Appointment `json:"appointment"`
}

type Availability struct {
	AvailableTimes  []string `json:"availableTimes"`
	HasAvailability bool     `json:"hasAvailability"`
}

// AppointmentBuckets is a stable, disjoint, order-preserving cover of one
// actor's appointments.
type AppointmentBuckets struct {
	Today     []Appointment `json:"today"`
	Upcoming  []Appointment `json:"upcoming"`
	Completed []Appointment `json:"completed"`
	Cancelled []Appointment `json:"cancelled"`
}
