package backend_dto

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	ID    int    `json:"id"`
}

type Review struct {
	AppointmentID int    `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// ErrorBody is the error envelope the backend uses on non-2xx responses. A
// body that fails to decode into this shape is treated as a generic remote
// failure, never as a crash.
type ErrorBody struct {
	Message string `json:"message"`
}
