package models

type DashboardStats struct {
	TotalPatients       int     `json:"totalPatients"`
	TotalDoctors        int     `json:"totalDoctors"`
	ApprovedDoctors     int     `json:"approvedDoctors"`
	PendingDoctors      int     `json:"pendingDoctors"`
	TotalAppointments   int     `json:"totalAppointments"`
	PendingAppointments int     `json:"pendingAppointments"`
	TodayAppointments   int     `json:"todayAppointments"`
	Revenue             float64 `json:"revenue"`
}
