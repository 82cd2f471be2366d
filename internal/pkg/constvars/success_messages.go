package constvars

const (
	LoginSuccessMessage          = "logged in successfully"
	LogoutSuccessMessage         = "logged out successfully"
	RegisterSuccessMessage       = "account registered successfully"
	BookingConfirmedMessage      = "appointment booked successfully"
	BookingWaitlistedMessage     = "you were added to the waiting list and will be notified when a slot becomes available"
	CompleteSuccessMessage       = "consultation completed successfully"
	CancelSuccessMessage         = "appointment cancelled successfully"
	GetAvailabilityMessage       = "available times retrieved successfully"
	GetDashboardMessage          = "dashboard retrieved successfully"
	GetDoctorsMessage            = "doctors retrieved successfully"
	GetProfileMessage            = "profile retrieved successfully"
	UpdateProfileMessage         = "profile updated successfully"
	DeleteProfileMessage         = "account deleted successfully"
	UploadProfilePictureMessage  = "profile picture uploaded successfully"
	GetReviewableMessage         = "completed consultations retrieved successfully"
	SubmitReviewSuccessMessage   = "review submitted successfully"
	GetAppointmentSuccessMessage = "appointments retrieved successfully"
)
