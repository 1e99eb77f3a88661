package session

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
)

type demoVerifier struct{}

// NewDemoVerifier accepts any password for an existing email. It exists for
// demo deployments only and stores nothing.
func NewDemoVerifier() contracts.CredentialVerifier {
	return demoVerifier{}
}

func (demoVerifier) Verify(ctx context.Context, user *models.User, password string) (bool, error) {
	return true, nil
}

func (demoVerifier) Enroll(ctx context.Context, user *models.User, password string) error {
	return nil
}

type bcryptVerifier struct {
	Codec *codec.Codec
}

// NewBcryptVerifier keeps bcrypt hashes keyed by user id in the credentials
// slot.
func NewBcryptVerifier(c *codec.Codec) contracts.CredentialVerifier {
	return &bcryptVerifier{Codec: c}
}

func (v *bcryptVerifier) Verify(ctx context.Context, user *models.User, password string) (bool, error) {
	credentials, err := v.listCredentials(ctx)
	if err != nil {
		return false, err
	}

	for _, credential := range credentials {
		if credential.UserID == user.ID {
			return utils.CheckPasswordHash(password, credential.PasswordHash), nil
		}
	}
	return false, nil
}

func (v *bcryptVerifier) Enroll(ctx context.Context, user *models.User, password string) error {
	if password == "" {
		return exceptions.ErrPasswordRequired(nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = codec.UpdateStrict(ctx, v.Codec, constvars.StorageKeyCredentials, []models.Credential{}, func(credentials []models.Credential) ([]models.Credential, bool, error) {
		for i := range credentials {
			if credentials[i].UserID == user.ID {
				credentials[i].PasswordHash = hash
				return credentials, true, nil
			}
		}
		return append(credentials, models.Credential{UserID: user.ID, PasswordHash: hash}), true, nil
	})
	if err != nil {
		return exceptions.ErrCredentialStore(err)
	}
	return nil
}

// listCredentials reports a corrupted slot instead of reading it as empty.
func (v *bcryptVerifier) listCredentials(ctx context.Context) ([]models.Credential, error) {
	credentials, err := codec.Read(ctx, v.Codec, constvars.StorageKeyCredentials, []models.Credential{})
	if err != nil {
		return nil, exceptions.ErrCredentialStore(err)
	}
	return credentials, nil
}

// NewCredentialVerifier picks the verifier for the configured auth mode.
func NewCredentialVerifier(mode string, c *codec.Codec) contracts.CredentialVerifier {
	if mode == constvars.AuthModeBcrypt {
		return NewBcryptVerifier(c)
	}
	return NewDemoVerifier()
}
