package constvars

// Storage slots, relative to the configured key prefix.
const (
	StorageKeyUsers         = "users"
	StorageKeyCurrentUser   = "current_user"
	StorageKeyAppointments  = "appointments"
	StorageKeyReviews       = "reviews"
	StorageKeyNotifications = "notifications"
	StorageKeyCredentials   = "credentials"
	StorageKeySessions      = "sessions"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
	StorageDriverMongo  = "mongo"
	StorageDriverMinio  = "minio"
)

const (
	AuthModeDemo   = "demo"
	AuthModeBcrypt = "bcrypt"
)

const (
	ResourceUser         = "user"
	ResourceDoctor       = "doctor"
	ResourceAppointment  = "appointment"
	ResourceNotification = "notification"
)

const (
	DateLayout                = "2006-01-02"
	DefaultAppointmentReason  = "General consultation"
	DefaultDoctorFee          = 100
	MongoCollectionKeyValues  = "key_values"
	MongoFieldValue           = "value"
	MinioObjectContentType    = "application/json"
	NotificationEventExchange = ""
)
