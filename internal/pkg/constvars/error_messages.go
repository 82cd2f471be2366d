package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"base64":    "must be a valid base64 string",
	"datetime":  "must be a valid date in format %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type": "must be either 'doctor' or 'patient'",
	"time_hhmm": "must be a valid time of day in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gte":      true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSlotTaken                     = "the selected time is no longer available, please pick another one"
	ErrClientRecordNotFound                = "the requested record was not found"
	ErrClientBackendUnavailable            = "the booking service is temporarily unavailable"
	ErrClientNotesRequired                 = "the consultation description must not be empty"
	ErrClientInvalidFee                    = "the consultation fee must be a non-negative amount"
	ErrClientTimeRequired                  = "please select one of the available times"
	ErrClientDateRequired                  = "please select a date for the appointment"
	ErrClientReviewNotAllowed              = "only completed consultations can be reviewed"
	ErrClientAppointmentAlreadyClosed      = "this consultation has already been closed"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate       = "cannot parse the requested date"
	ErrDevCannotParseTime       = "cannot parse time into the given format"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevValidationFailed      = "validation failed"
	ErrDevImageValidationFailed = "image validation failed"
	ErrDevMissingRequiredFields = "missing required fields"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleDoesntMatch       = "request done by a user with a different role"
	ErrDevAuthInvalidRole           = "invalid role, should be 'doctor' or 'patient'"

	// Backend collaborator messages
	ErrDevBackendCreateResource   = "failed to create %s on the platform backend"
	ErrDevBackendUpdateResource   = "failed to update %s on the platform backend"
	ErrDevBackendGetResource      = "failed to get %s from the platform backend"
	ErrDevBackendDeleteResource   = "failed to delete %s on the platform backend"
	ErrDevBackendDecodeResponse   = "failed to decode %s response from the platform backend"
	ErrDevBackendResourceNotFound = "%s not found on the platform backend"
	ErrDevBackendSlotConflict     = "slot already taken between availability check and submission"
	ErrDevAppointmentTerminal     = "appointment is in a terminal state and cannot transition"
	ErrDevReviewNotAllowed        = "review submitted for an appointment that is not completed"

	// Redis messages
	ErrDevRedisFailedToSet    = "failed to set value into redis"
	ErrDevRedisFailedToGet    = "failed to get value from redis"
	ErrDevRedisFailedToDelete = "failed to delete value from redis"

	// Notifier messages
	ErrDevNotifierPublish = "failed to publish notification event to queue"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
)
