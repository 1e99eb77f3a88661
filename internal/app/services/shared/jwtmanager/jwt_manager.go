package jwtmanager

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const generatedSecretLength = 32

// JWTManager signs and verifies the bearer tokens handed out at sign in.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// CreateTokenInput carries the user as subject and the session as token id.
type CreateTokenInput struct {
	Subject   string
	SessionID string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput is only meaningful when Valid is true.
type VerifyTokenOutput struct {
	Valid     bool
	Subject   string
	SessionID string
}

// NewJWTManager signs with HS256 using InternalConfig.Auth.JWTSecret. An
// empty secret is replaced by a random one, which means tokens do not
// outlive the process.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	if cfg.Auth.SessionTTLInHours <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %d hours", cfg.Auth.SessionTTLInHours)
	}

	secret := []byte(strings.TrimSpace(cfg.Auth.JWTSecret))
	if len(secret) == 0 {
		secret = make([]byte, generatedSecretLength)
		_, err := rand.Read(secret)
		if err != nil {
			return nil, err
		}
		log.Warn("JWTManager using a generated secret, sessions end when the process stops")
	}

	return &JWTManager{
		log:    log,
		secret: secret,
		ttl:    cfg.SessionTTL(),
		now:    time.Now,
	}, nil
}

// CreateToken sets iat and nbf to now and exp to now plus the session ttl.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	j.log.Debug("JWTManager.CreateToken called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	if in == nil || strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.SessionID) == "" {
		return nil, errors.New("subject and session id are required")
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.MapClaims{
		"sub": in.Subject,
		"jti": in.SessionID,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken checks signature, algorithm and time claims. A token that
// fails any check is reported as not valid, not as an error.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}

	parsed, err := jwt.Parse(in.Token, keyFunc)
	if err != nil || !parsed.Valid {
		j.log.Debug("JWTManager.VerifyToken token rejected",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return &VerifyTokenOutput{Valid: false}, nil
	}
	subject, _ := claims["sub"].(string)
	sessionID, _ := claims["jti"].(string)
	if subject == "" || sessionID == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	return &VerifyTokenOutput{Valid: true, Subject: subject, SessionID: sessionID}, nil
}
