package constvars

const (
	NotificationTitleAppointmentRequested = "New appointment request"
	NotificationMessageAppointmentRequest = "%s requested an appointment on %s at %s"
	NotificationTitleAppointmentUpdated   = "Appointment %s"
	NotificationMessageAppointmentUpdate  = "Your appointment with %s on %s at %s is now %s"
	NotificationTitleDoctorApproved       = "Application approved"
	NotificationMessageDoctorApproved     = "Your profile is now visible to patients"
)
