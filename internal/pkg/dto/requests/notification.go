package requests

// NotificationEvent is the payload published to the notification queue. The
// notifier worker consuming the queue owns delivery (email, push); this
// service only emits the event.
type NotificationEvent struct {
	Event         string `json:"event"`
	AppointmentID int    `json:"appointmentId,omitempty"`
	DoctorID      int    `json:"doctorId"`
	PatientID     int    `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
}
