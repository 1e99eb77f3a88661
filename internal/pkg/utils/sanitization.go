package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

// cleanWhiteSpaceFromEachStringOfAnArray trims every entry and drops the
// ones left empty.
func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v != "" {
			sanitizedArray = append(sanitizedArray, v)
		}
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(input.Email)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Avatar = strings.TrimSpace(input.Avatar)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Hospital = strings.TrimSpace(input.Hospital)
	input.Location = strings.TrimSpace(input.Location)
	input.Bio = strings.TrimSpace(input.Bio)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Address = strings.TrimSpace(input.Address)
	input.MedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.MedicalHistory)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeUpdateAppointmentStatusRequest(input *requests.UpdateAppointmentStatus) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	input.Notes = strings.TrimSpace(input.Notes)
	input.Prescription = strings.TrimSpace(input.Prescription)
}

func SanitizeCreateReviewRequest(input *requests.CreateReview) {
	input.Comment = strings.TrimSpace(input.Comment)
}
