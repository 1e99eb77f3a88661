package constvars

// Validation messages for request payloads, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"required_if":        "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s",
	"max":                "maximum at %s",
	"gte":                "must be greater than or equal to %s",
	"lte":                "must be less than or equal to %s",
	"oneof":              "must be one of [%s]",
	"datetime":           "must be a date in %s format",
	"appointment_status": "must be one of pending, confirmed, completed or cancelled",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "please login to continue"
	ErrClientRecordNotFound                = "the requested data was not found"
	ErrClientInvalidStatusTransition       = "the appointment can no longer be moved to that status"
	ErrClientDoctorNotAvailable            = "the doctor is not accepting appointments"
	ErrClientPasswordRequired              = "password is required"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevAuthSessionMissing     = "no current user in session"
	ErrDevAuthGenerateToken      = "failed to generate session token"
	ErrDevAuthTokenInvalid       = "session token is not valid"
	ErrDevRoleTypeDoesntMatch    = "role type doesn't match"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevPasswordRequired       = "password required to enroll credentials"

	// Storage messages
	ErrDevStorageCorrupted      = "stored value at key %s is not valid JSON"
	ErrDevStorageGet            = "failed to read key %s from storage"
	ErrDevStorageSet            = "failed to write key %s to storage"
	ErrDevStorageDelete         = "failed to delete key %s from storage"
	ErrDevStorageUnknownDriver  = "unknown storage driver %s"
	ErrDevRecordNotFound        = "%s with id %s not found"
	ErrDevInvalidStatusChange   = "appointment %s cannot move from %s to %s"
	ErrDevDoctorNotApproved     = "doctor %s is not approved"
	ErrDevSeedDatasetInvalid    = "embedded seed dataset cannot be decoded"
	ErrDevPublishNotification   = "failed to publish notification event to queue %s"
	ErrDevCredentialStoreFailed = "failed to access credential store"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
