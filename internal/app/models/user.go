package models

import "strings"

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

// User is one record of the users collection. Role specific fields live in
// the embedded profiles so a patient, a doctor and an admin all serialize as
// one flat JSON object.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	Phone     string   `json:"phone,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	CreatedAt string   `json:"createdAt"`
	*PatientProfile
	*DoctorProfile
}

type PatientProfile struct {
	DateOfBirth    string   `json:"dateOfBirth"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
}

type DoctorProfile struct {
	Specialization string               `json:"specialization"`
	Experience     int                  `json:"experience"`
	Qualification  string               `json:"qualification"`
	Hospital       string               `json:"hospital"`
	Location       string               `json:"location"`
	Fee            float64              `json:"fee"`
	Rating         float64              `json:"rating"`
	ReviewCount    int                  `json:"reviewCount"`
	Bio            string               `json:"bio"`
	Availability   []DoctorAvailability `json:"availability"`
	IsApproved     bool                 `json:"isApproved"`
}

type DoctorAvailability struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsApprovedDoctor reports whether the user is a doctor visible to patients.
func (u *User) IsApprovedDoctor() bool {
	return u.IsDoctor() && u.DoctorProfile != nil && u.DoctorProfile.IsApproved
}

// HasEmail compares emails case-insensitively, the way login looks users up.
func (u *User) HasEmail(email string) bool {
	return strings.EqualFold(u.Email, strings.TrimSpace(email))
}

// SpecializationName is empty for users without a doctor profile.
func (u *User) SpecializationName() string {
	if u.DoctorProfile == nil {
		return ""
	}
	return u.DoctorProfile.Specialization
}
