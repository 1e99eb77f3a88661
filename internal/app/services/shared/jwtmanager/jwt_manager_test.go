package jwtmanager

import (
	"context"
	"medibook-service/internal/app/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	manager, err := NewJWTManager(&config.InternalConfig{
		Auth: config.Auth{JWTSecret: secret, SessionTTLInHours: 1},
	}, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func TestCreateAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, "test-secret")

	created, err := manager.CreateToken(ctx, &CreateTokenInput{Subject: "u1", SessionID: "s1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, time.Minute)

	verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
	require.NoError(t, err)
	assert.Equal(t, &VerifyTokenOutput{Valid: true, Subject: "u1", SessionID: "s1"}, verified)
}

func TestVerifyTokenRejects(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, "test-secret")
	created, err := manager.CreateToken(ctx, &CreateTokenInput{Subject: "u1", SessionID: "s1"})
	require.NoError(t, err)

	expired := newTestManager(t, "test-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.CreateToken(ctx, &CreateTokenInput{Subject: "u1", SessionID: "s1"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1", "jti": "s1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		manager *JWTManager
		token   string
	}{
		{name: "Empty token", manager: manager, token: ""},
		{name: "Garbage", manager: manager, token: "not.a.token"},
		{name: "Other secret", manager: newTestManager(t, "other-secret"), token: created.Token},
		{name: "Expired", manager: manager, token: stale.Token},
		{name: "Unsigned", manager: manager, token: unsigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verified, err := tc.manager.VerifyToken(ctx, &VerifyTokenInput{Token: tc.token})
			require.NoError(t, err)
			assert.False(t, verified.Valid)
		})
	}
}

func TestCreateTokenRequiresSubjectAndSession(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	_, err := manager.CreateToken(context.Background(), &CreateTokenInput{Subject: "u1"})
	assert.Error(t, err)
}

func TestGeneratedSecretsDiffer(t *testing.T) {
	ctx := context.Background()
	first := newTestManager(t, "")
	second := newTestManager(t, "")

	created, err := first.CreateToken(ctx, &CreateTokenInput{Subject: "u1", SessionID: "s1"})
	require.NoError(t, err)

	verified, err := second.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
	require.NoError(t, err)
	assert.False(t, verified.Valid)
}
