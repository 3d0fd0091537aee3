package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/studio_admin/internal/repository/base"
)

// ErrEmptyToken API ответил успехом, но без токена
var ErrEmptyToken = errors.New("login response has no token")

type AuthRepository struct {
	client *base.Client
}

func NewAuthRepository(client *base.Client) *AuthRepository {
	return &AuthRepository{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login обменивает учётные данные администратора на JWT
func (r *AuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := r.client.Do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}
	return resp.Token, nil
}
