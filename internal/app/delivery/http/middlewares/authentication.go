package middlewares

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"slices"
	"strings"
)

const bearerPrefix = "Bearer "

// RequireSession resolves the bearer token to its stored session and
// attaches the session's user and id to the request context.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotLoggedIn(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		session, user, err := m.SessionManager.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil || user == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CURRENT_USER_KEY, user)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after RequireSession.
func (m *Middlewares) RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := utils.CurrentUserFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !slices.Contains(roles, user.Role) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
