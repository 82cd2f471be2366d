package requests

type SubmitReview struct {
	AppointmentID int    `json:"appointmentId" validate:"required,gte=1"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"max=500"`
}
