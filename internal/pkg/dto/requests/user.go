package requests

// UpdateProfile carries the editable profile fields. Doctor-only fields are
// ignored for other roles.
type UpdateProfile struct {
	Name           string   `json:"name" validate:"required,max=120"`
	Phone          string   `json:"phone" validate:"omitempty,max=32"`
	Avatar         string   `json:"avatar"`
	Specialization string   `json:"specialization"`
	Qualification  string   `json:"qualification"`
	Experience     int      `json:"experience" validate:"gte=0"`
	Hospital       string   `json:"hospital"`
	Location       string   `json:"location"`
	Fee            float64  `json:"fee" validate:"gte=0"`
	Bio            string   `json:"bio"`
	DateOfBirth    string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
}

type DoctorFilter struct {
	Search         string
	Specialization string
}
