package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Trims fields and lowercases role", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email: "  Alice@X.com ",
			Name:  "  Alice ",
			Role:  " Patient ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Alice@X.com", request.Email, "email case is kept, lookups ignore it")
		assert.Equal(t, "Alice", request.Name)
		assert.Equal(t, "patient", request.Role)
	})
}

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	t.Run("Medical history entries are trimmed and blanks dropped", func(t *testing.T) {
		request := &requests.UpdateProfile{
			Name:           " Bob ",
			MedicalHistory: []string{"  Asthma ", "   ", "Hypertension"},
		}

		SanitizeUpdateProfileRequest(request)

		assert.Equal(t, "Bob", request.Name)
		assert.Equal(t, []string{"Asthma", "Hypertension"}, request.MedicalHistory)
	})

	t.Run("Missing medical history stays nil", func(t *testing.T) {
		request := &requests.UpdateProfile{Name: "Bob"}

		SanitizeUpdateProfileRequest(request)

		assert.Nil(t, request.MedicalHistory)
	})
}

func TestSanitizeUpdateAppointmentStatusRequest(t *testing.T) {
	request := &requests.UpdateAppointmentStatus{Status: " Confirmed ", Notes: " bring reports "}

	SanitizeUpdateAppointmentStatusRequest(request)

	assert.Equal(t, "confirmed", request.Status)
	assert.Equal(t, "bring reports", request.Notes)
}
