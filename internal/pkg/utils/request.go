package utils

import (
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseAndValidate decodes a JSON body into request, applies the sanitizers
// and runs struct validation on the result.
func ParseAndValidate[T any](r *http.Request, request *T, sanitizers ...func(*T)) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	for _, sanitize := range sanitizers {
		sanitize(request)
	}

	err = ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
