package utils

import (
	"medibook-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	return models.AppointmentStatus(fl.Field().String()).IsValid()
}
