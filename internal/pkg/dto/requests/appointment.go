package requests

type BookAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required"`
	Reason   string `json:"reason" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status       string `json:"status" validate:"required,appointment_status"`
	Notes        string `json:"notes"`
	Prescription string `json:"prescription"`
}
