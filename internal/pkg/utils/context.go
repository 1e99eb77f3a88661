package utils

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
)

// CurrentUserFromContext returns the user the session middleware attached.
func CurrentUserFromContext(ctx context.Context) (*models.User, error) {
	user, ok := ctx.Value(constvars.CONTEXT_CURRENT_USER_KEY).(*models.User)
	if !ok || user == nil {
		return nil, exceptions.ErrNotLoggedIn(nil)
	}
	return user, nil
}

// SessionIDFromContext returns the id of the session the bearer token named.
func SessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrNotLoggedIn(nil)
	}
	return sessionID, nil
}
