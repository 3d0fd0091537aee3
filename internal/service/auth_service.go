package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/auth"
	"go.uber.org/zap"
)

// ErrSessionExpired сессия истекла, а учётных данных для повторного входа нет
var ErrSessionExpired = errors.New("api session expired")

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Credentials способы входа: статический токен и/или email с паролем
type Credentials struct {
	Token    string
	Email    string
	Password string
}

func (c Credentials) IsSet() bool {
	return c.Email != "" && c.Password != ""
}

// AuthService управляет жизненным циклом сессии API
type AuthService struct {
	session     *auth.Session
	authn       Authenticator
	credentials Credentials
	now         func() time.Time
	logger      *zap.Logger
}

func NewAuthService(session *auth.Session, authn Authenticator, credentials Credentials, logger *zap.Logger) *AuthService {
	return &AuthService{
		session:     session,
		authn:       authn,
		credentials: credentials,
		now:         time.Now,
		logger:      logger,
	}
}

// StartWithToken открывает сессию готовым токеном (API_TOKEN)
func (s *AuthService) StartWithToken(token string) error {
	if err := s.session.Start(token); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.logger.Info("API session started from static token",
		zap.String("subject", s.session.Subject()),
		zap.Time("expires_at", s.session.ExpiresAt()),
	)
	return nil
}

// Login входит по email/паролю и открывает сессию
func (s *AuthService) Login(ctx context.Context) error {
	if !s.credentials.IsSet() {
		return ErrSessionExpired
	}

	token, err := s.authn.Login(ctx, s.credentials.Email, s.credentials.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.session.Start(token); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	s.logger.Info("API session started",
		zap.String("subject", s.session.Subject()),
		zap.Time("expires_at", s.session.ExpiresAt()),
	)
	return nil
}

// Start открывает сессию: email/пароль имеют приоритет, иначе статический токен
func (s *AuthService) Start(ctx context.Context) error {
	if s.credentials.IsSet() {
		return s.Login(ctx)
	}
	if s.credentials.Token == "" {
		return ErrSessionExpired
	}
	return s.StartWithToken(s.credentials.Token)
}

// EnsureSession проверяет сессию и при истечении входит заново, если можно
func (s *AuthService) EnsureSession(ctx context.Context) error {
	if s.session.IsAuthenticated(s.now()) {
		return nil
	}
	s.logger.Info("API session is not authenticated, trying to log in")
	return s.Login(ctx)
}

// Logout закрывает сессию
func (s *AuthService) Logout() {
	s.session.End()
	s.logger.Info("API session ended")
}

func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated(s.now())
}
