package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	ResourceAppointment = "appointment"
	ResourceDoctor      = "doctor"
	ResourcePatient     = "patient"
	ResourceReview      = "review"
	ResourceAuth        = "auth"
)

// Backend endpoint paths. The platform backend owns these routes; formats take
// the resource identifier.
const (
	BackendPathLoginFormat           = "/api/auth/login/%s"
	BackendPathRegisterDoctor        = "/api/doctor"
	BackendPathRegisterPatient       = "/api/patient"
	BackendPathDoctorFormat          = "/api/doctor/%d"
	BackendPathPatientFormat         = "/api/patient/%d"
	BackendPathDoctorList            = "/api/doctor"
	BackendPathDoctorAppointments    = "/api/appointments/doctor/%d"
	BackendPathPatientAppointments   = "/api/appointments/patient/%d"
	BackendPathAppointments          = "/api/appointments"
	BackendPathAvailableTimes        = "/api/appointments/available-times"
	BackendPathCompleteFormat        = "/api/appointment/%d/complete"
	BackendPathCancelFormat          = "/api/appointments/%d"
	BackendPathReviews               = "/api/reviews"
	BackendPathReviewsByPatientQuery = "/api/reviews?patientId=%d"
)

const (
	// AvailabilityCacheKeyFormat keys cached slot lookups by doctor and date.
	AvailabilityCacheKeyFormat = "availability:%d:%s"
	SessionKeyFormat           = "session:%s"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	NotificationEventBookingConfirmed     = "booking.confirmed"
	NotificationEventBookingWaitlisted    = "booking.waitlisted"
	NotificationEventAppointmentCancelled = "appointment.cancelled"
)

const (
	ProfilePictureObjectFormat = "profile-pictures/%s-%d%s"
)
