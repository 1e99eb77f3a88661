package constvars

const (
	// Auth messages
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	GetMeSuccess    = "get current user successfully"

	// User messages
	UserUpdatedSuccess     = "profile updated successfully"
	GetDoctorsSuccess      = "get doctors successfully"
	GetDoctorSuccess       = "get doctor successfully"
	GetPatientsSuccess     = "get patients successfully"
	DoctorApprovedSuccess  = "doctor has been approved"
	DoctorRejectedSuccess  = "doctor has been removed"
	GetDashboardStatsOK    = "get dashboard stats successfully"
	GetAppointmentsSuccess = "get appointments successfully"

	// Appointment messages
	AppointmentBookedSuccess  = "appointment booked successfully"
	AppointmentUpdatedSuccess = "appointment %s"
	AppointmentDeletedSuccess = "appointment deleted successfully"

	// Review messages
	GetReviewsSuccess = "get reviews successfully"
	ReviewAddedOK     = "review submitted successfully"

	// Notification messages
	GetNotificationsSuccess  = "get notifications successfully"
	NotificationReadSuccess  = "notification marked as read"
)
