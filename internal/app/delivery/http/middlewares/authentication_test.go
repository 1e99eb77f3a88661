package middlewares

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeSessionManager knows one token per user and never touches the
// current-user slot from RequireSession.
type fakeSessionManager struct {
	current *models.User
	tokens  map[string]*models.User
}

func (f *fakeSessionManager) Login(ctx context.Context, email, password string) (*models.User, error) {
	return nil, nil
}

func (f *fakeSessionManager) Logout(ctx context.Context) error {
	f.current = nil
	return nil
}

func (f *fakeSessionManager) Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	return nil, nil
}

func (f *fakeSessionManager) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.current, nil
}

func (f *fakeSessionManager) RefreshCurrentUser(ctx context.Context, user *models.User) error {
	f.current = user
	return nil
}

func (f *fakeSessionManager) StartSession(ctx context.Context, user *models.User) (*responses.LoginUser, error) {
	return &responses.LoginUser{Token: "token-" + user.ID, User: user}, nil
}

func (f *fakeSessionManager) ResolveSession(ctx context.Context, token string) (*models.Session, *models.User, error) {
	user, ok := f.tokens[token]
	if !ok {
		return nil, nil, nil
	}
	return &models.Session{ID: "session-" + user.ID, UserID: user.ID}, user, nil
}

func (f *fakeSessionManager) EndSession(ctx context.Context, sessionID string) error {
	return nil
}

// newTestMiddlewares signs user in as the last client while every request
// below carries the token of the user it names, if any.
func newTestMiddlewares(user *models.User) *Middlewares {
	tokens := map[string]*models.User{}
	if user != nil {
		tokens["token-"+user.ID] = user
	}
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionManager: &fakeSessionManager{current: user, tokens: tokens},
		InternalConfig: &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}},
	}
}

func requestWithToken(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func TestRequireSession(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := utils.CurrentUserFromContext(r.Context())
		assert.NoError(t, err)
		sessionID, err := utils.SessionIDFromContext(r.Context())
		assert.NoError(t, err)
		w.Write([]byte(user.ID + " " + sessionID))
	})
	patient := &models.User{ID: "patient-1", Role: models.RolePatient}

	t.Run("No token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newTestMiddlewares(nil).RequireSession(okHandler).ServeHTTP(rr, requestWithToken("/api/v1/auth/me", ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Someone else signed in but no token sent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newTestMiddlewares(patient).RequireSession(okHandler).ServeHTTP(rr, requestWithToken("/api/v1/auth/me", ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newTestMiddlewares(patient).RequireSession(okHandler).ServeHTTP(rr, requestWithToken("/api/v1/auth/me", "forged"))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Non bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic token-patient-1")
		rr := httptest.NewRecorder()
		newTestMiddlewares(patient).RequireSession(okHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newTestMiddlewares(patient).RequireSession(okHandler).ServeHTTP(rr, requestWithToken("/api/v1/auth/me", "token-patient-1"))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "patient-1 session-patient-1", rr.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		user     *models.User
		expected int
	}{
		{"Admin allowed", &models.User{ID: "admin-1", Role: models.RoleAdmin}, http.StatusNoContent},
		{"Patient forbidden", &models.User{ID: "patient-1", Role: models.RolePatient}, http.StatusForbidden},
		{"Anonymous rejected", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiddlewares(tt.user)
			handler := m.RequireSession(m.RequireRole(models.RoleAdmin)(okHandler))

			token := ""
			if tt.user != nil {
				token = "token-" + tt.user.ID
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithToken("/api/v1/admin/stats", token))
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)
	var seen interface{}
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "client-id", seen)
}

func TestErrorHandlerRecovers(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
