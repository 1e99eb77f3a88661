package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// SessionManager owns the in-process current-user slot and the per-client
// sessions behind bearer tokens. Login and CurrentUser return nil, nil when
// nobody is signed in.
type SessionManager interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	RefreshCurrentUser(ctx context.Context, user *models.User) error

	// StartSession stores a new session for user and returns its signed token.
	StartSession(ctx context.Context, user *models.User) (*responses.LoginUser, error)
	// ResolveSession returns nil, nil, nil for a token that is invalid,
	// expired, revoked or whose user no longer exists.
	ResolveSession(ctx context.Context, token string) (*models.Session, *models.User, error)
	EndSession(ctx context.Context, sessionID string) error
}

type CredentialVerifier interface {
	Verify(ctx context.Context, user *models.User, password string) (bool, error)
	Enroll(ctx context.Context, user *models.User, password string) error
}
