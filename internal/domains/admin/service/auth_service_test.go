package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aurexis-backend/internal/config"
	"aurexis-backend/internal/domains/admin/model"
	"aurexis-backend/pkg/jwt"
)

type failingIssuer struct{}

func (failingIssuer) GenerateAccessToken(email, role string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("signing failed")
}

func newTestService(t *testing.T, password string) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AdminConfig{Email: "admin@aurexis.solutions", PasswordHash: string(hash)}
	return NewAuthService(cfg, jwt.NewManager("test-secret", "aurexis-test", time.Hour))
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, "s3cret-pass")

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "  Admin@Aurexis.Solutions ",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin@aurexis.solutions", resp.Email)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := jwt.NewManager("test-secret", "aurexis-test", time.Hour).ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "s3cret-pass")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@aurexis.solutions",
		Password: "nope",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t, "s3cret-pass")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "someone@else.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{Email: "admin@aurexis.solutions"}, failingIssuer{})

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@aurexis.solutions",
		Password: "anything",
	})

	assert.ErrorIs(t, err, model.ErrLoginDisabled)
	status, _, code := model.GetErrorResponse(err)
	assert.Equal(t, 503, status)
	assert.Equal(t, model.CodeLoginDisabled, code)
}

func TestLogin_TokenFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(config.AdminConfig{Email: "admin@aurexis.solutions", PasswordHash: string(hash)}, failingIssuer{})

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "admin@aurexis.solutions", Password: "pw"})

	status, _, code := model.GetErrorResponse(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, model.CodeTokenGeneration, code)
}
