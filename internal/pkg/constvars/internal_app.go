package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CURRENT_USER_KEY         ContextKey = "current_user"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	URLParamDoctorID       = "doctorID"
	URLParamAppointmentID  = "appointmentID"
	URLParamNotificationID = "notificationID"
	QueryParamSearch       = "search"
	QueryParamSpecialty    = "specialization"
)
