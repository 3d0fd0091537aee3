package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("session token is not a valid JWT")

// Session явный объект сессии API вместо глобального состояния.
// Создаётся при старте (Start), закрывается при выходе (End).
// Подпись токена проверяет сервер, клиент читает только срок действия.
type Session struct {
	mu        sync.RWMutex
	token     string
	subject   string
	expiresAt time.Time // нулевое значение: срок не указан
}

func NewSession() *Session {
	return &Session{}
}

// Start открывает сессию с токеном
func (s *Session) Start(token string) error {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.subject = claims.Subject
	s.expiresAt = time.Time{}
	if claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	}
	return nil
}

// End закрывает сессию (logout)
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.subject = ""
	s.expiresAt = time.Time{}
}

// Token текущий bearer-токен, пустая строка если сессии нет
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subject пользователь из токена (обычно email администратора)
func (s *Session) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subject
}

// ExpiresAt срок действия токена, нулевое время если не указан
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// IsAuthenticated есть токен и он не истёк на момент now
func (s *Session) IsAuthenticated(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || now.Before(s.expiresAt)
}
