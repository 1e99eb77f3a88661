package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"

	LoggingStorageKey      = "storage_key"
	LoggingUserIDKey       = "user_id"
	LoggingSessionIDKey    = "session_id"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingAppointmentKey  = "appointment_id"
	LoggingStatusFromKey   = "status_from"
	LoggingStatusToKey     = "status_to"
	LoggingWriteResultKey  = "write_result"
	LoggingRatingKey       = "rating"
	LoggingReviewCountKey  = "review_count"
	LoggingNotificationKey = "notification_id"
)
