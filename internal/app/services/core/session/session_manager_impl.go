package session

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/app/services/shared/jwtmanager"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// sessionManager keeps one signed-in user for in-process callers, and one
// stored session per bearer token for HTTP clients. The current-user slot
// has no expiry and survives restarts when the store does.
type sessionManager struct {
	Codec          *codec.Codec
	UserRepository contracts.UserRepository
	Verifier       contracts.CredentialVerifier
	JWTManager     *jwtmanager.JWTManager
	Log            *zap.Logger
	Now            func() time.Time
}

func NewSessionManager(
	c *codec.Codec,
	userRepository contracts.UserRepository,
	verifier contracts.CredentialVerifier,
	jwtManager *jwtmanager.JWTManager,
	logger *zap.Logger,
) contracts.SessionManager {
	return &sessionManager{
		Codec:          c,
		UserRepository: userRepository,
		Verifier:       verifier,
		JWTManager:     jwtManager,
		Log:            logger,
		Now:            time.Now,
	}
}

// Login signs in the first user whose email matches case-insensitively and
// whose password the verifier accepts. Anything else yields nil, nil.
func (m *sessionManager) Login(ctx context.Context, email, password string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	user, err := m.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		m.Log.Info("sessionManager.Login unknown email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	ok, err := m.Verifier.Verify(ctx, user, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		m.Log.Info("sessionManager.Login credentials rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, nil
	}

	err = m.setCurrentUser(ctx, user)
	if err != nil {
		return nil, err
	}

	m.Log.Info("sessionManager.Login user signed in",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (m *sessionManager) Logout(ctx context.Context) error {
	return m.setCurrentUser(ctx, nil)
}

// Register creates the user and signs it in. Emails are not required to be
// unique.
func (m *sessionManager) Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	user := &models.User{
		ID:        utils.GenerateID(),
		Email:     request.Email,
		Name:      request.Name,
		Role:      models.UserRole(request.Role),
		Phone:     request.Phone,
		CreatedAt: utils.Timestamp(m.Now()),
	}

	switch user.Role {
	case models.RoleDoctor:
		user.DoctorProfile = &models.DoctorProfile{
			Specialization: request.Specialization,
			Fee:            constvars.DefaultDoctorFee,
			Availability:   []models.DoctorAvailability{},
			IsApproved:     false,
		}
	case models.RolePatient:
		user.PatientProfile = &models.PatientProfile{
			DateOfBirth:    request.DateOfBirth,
			Address:        request.Address,
			MedicalHistory: []string{},
		}
	}

	err := m.Verifier.Enroll(ctx, user, request.Password)
	if err != nil {
		return nil, err
	}

	err = m.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	err = m.setCurrentUser(ctx, user)
	if err != nil {
		return nil, err
	}

	m.Log.Info("sessionManager.Register user registered",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (m *sessionManager) CurrentUser(ctx context.Context) (*models.User, error) {
	return codec.ReadOrDefault[*models.User](ctx, m.Codec, constvars.StorageKeyCurrentUser, nil)
}

// RefreshCurrentUser replaces the session copy when user is the one signed
// in, so profile edits show up without signing in again.
func (m *sessionManager) RefreshCurrentUser(ctx context.Context, user *models.User) error {
	return codec.Update[*models.User](ctx, m.Codec, constvars.StorageKeyCurrentUser, nil, func(current *models.User) (*models.User, bool, error) {
		if current == nil || current.ID != user.ID {
			return current, false, nil
		}
		return user, true, nil
	})
}

func (m *sessionManager) setCurrentUser(ctx context.Context, user *models.User) error {
	return m.Codec.Write(ctx, constvars.StorageKeyCurrentUser, user)
}

// StartSession also drops sessions that have already expired.
func (m *sessionManager) StartSession(ctx context.Context, user *models.User) (*responses.LoginUser, error) {
	sessionID := utils.GenerateID()
	token, err := m.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		Subject:   user.ID,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	now := m.Now()
	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		CreatedAt: utils.Timestamp(now),
		ExpiresAt: utils.Timestamp(token.ExpiresAt),
	}
	err = codec.Update(ctx, m.Codec, constvars.StorageKeySessions, []models.Session{}, func(sessions []models.Session) ([]models.Session, bool, error) {
		live := make([]models.Session, 0, len(sessions)+1)
		for i := range sessions {
			if !sessions[i].ExpiredAt(now) {
				live = append(live, sessions[i])
			}
		}
		return append(live, session), true, nil
	})
	if err != nil {
		return nil, err
	}

	m.Log.Info("sessionManager.StartSession session started",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.LoginUser{
		Token:     token.Token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// ResolveSession reads the user fresh from the repository, so profile edits
// and approvals show up on the next request.
func (m *sessionManager) ResolveSession(ctx context.Context, token string) (*models.Session, *models.User, error) {
	verified, err := m.JWTManager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: token})
	if err != nil {
		return nil, nil, err
	}
	if !verified.Valid {
		return nil, nil, nil
	}

	sessions, err := codec.ReadOrDefault(ctx, m.Codec, constvars.StorageKeySessions, []models.Session{})
	if err != nil {
		return nil, nil, err
	}

	var session *models.Session
	for i := range sessions {
		if sessions[i].ID == verified.SessionID && sessions[i].UserID == verified.Subject {
			session = &sessions[i]
			break
		}
	}
	if session == nil || session.ExpiredAt(m.Now()) {
		return nil, nil, nil
	}

	user, err := m.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, nil, err
	}
	return session, user, nil
}

// EndSession revokes one session. Other clients of the same user stay
// signed in.
func (m *sessionManager) EndSession(ctx context.Context, sessionID string) error {
	err := codec.Update(ctx, m.Codec, constvars.StorageKeySessions, []models.Session{}, func(sessions []models.Session) ([]models.Session, bool, error) {
		remaining := make([]models.Session, 0, len(sessions))
		for i := range sessions {
			if sessions[i].ID != sessionID {
				remaining = append(remaining, sessions[i])
			}
		}
		return remaining, len(remaining) != len(sessions), nil
	})
	if err != nil {
		return err
	}

	m.Log.Info("sessionManager.EndSession session ended",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
