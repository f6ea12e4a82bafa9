package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"aurexis-backend/internal/config"
	"aurexis-backend/internal/domains/admin/model"
	"aurexis-backend/pkg/jwt"
)

// AuthService signs the single admin console account in
type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

// TokenIssuer is satisfied by *jwt.Manager
type TokenIssuer interface {
	GenerateAccessToken(email, role string) (string, time.Time, error)
}

type authService struct {
	email        string
	passwordHash []byte
	tokens       TokenIssuer
}

func NewAuthService(cfg config.AdminConfig, tokens TokenIssuer) AuthService {
	return &authService{
		email:        strings.ToLower(strings.TrimSpace(cfg.Email)),
		passwordHash: []byte(cfg.PasswordHash),
		tokens:       tokens,
	}
}

// dummyHash is compared against when the email does not match
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("aurexis-dummy-password"), bcrypt.DefaultCost)

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Step 1: login requires a configured hash
	if len(s.passwordHash) == 0 {
		return nil, model.ErrLoginDisabled
	}

	// Step 2: credentials
	email := strings.ToLower(strings.TrimSpace(req.Email))
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	hash := s.passwordHash
	if !emailMatch {
		hash = dummyHash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil || !emailMatch {
		log.Warn().Str("email", email).Msg("[ADMIN] failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	// Step 3: token
	token, expiresAt, err := s.tokens.GenerateAccessToken(s.email, jwt.RoleAdmin)
	if err != nil {
		return nil, model.NewTokenGenerationError(err)
	}

	log.Info().Str("email", s.email).Msg("[ADMIN] login succeeded")
	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       s.email,
	}, nil
}
