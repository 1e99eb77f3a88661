package responses

import "medibook-service/internal/app/models"

// LoginUser is returned by register and login. Token goes into the
// Authorization header as a bearer token.
type LoginUser struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      *models.User `json:"user"`
}
