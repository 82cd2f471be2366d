package responses

type Review struct {
	AppointmentID int    `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// ReviewableConsultation is a completed consultation joined with its existing
// review, when one was already submitted.
type ReviewableConsultation struct {
	Appointment Appointment `json:"appointment"`
	Review      *Review     `json:"review,omitempty"`
}

// FeePolicy is the outcome of the plan-matching evaluation: covered visits
// are non-editable with a zero amount, uncovered visits preserve the stored
// fee for display until the doctor edits it.
type FeePolicy struct {
	Editable bool    `json:"editable"`
	Amount   float64 `json:"amount"`
}
