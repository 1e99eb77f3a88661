package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Name           string `json:"name" validate:"required,max=120"`
	Role           string `json:"role" validate:"required,oneof=patient doctor"`
	Phone          string `json:"phone" validate:"omitempty,max=32"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	Specialization string `json:"specialization" validate:"required_if=Role doctor"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address        string `json:"address"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}
