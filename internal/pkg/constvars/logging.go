package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionDataKey      = "session_data"
	LoggingBackendUrlKey       = "backend_url"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingDateKey             = "date"
	LoggingTimeKey             = "time"
	LoggingStatusCodeKey       = "status_code"
	LoggingResponseCountKey    = "response_count"
	LoggingEventKey            = "event"
	LoggingQueueKey            = "queue"
	LoggingObjectNameKey       = "object_name"
	LoggingRoleKey             = "role"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
)
