package usecase

import (
	"context"
	"errors"
	"os"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase gates the admin area behind a single credential pair.
//
// This is deliberately a stub: exact match against one configured pair, no
// hashing, no sessions, no attempt counting. The error is the same for a wrong
// user and a wrong password.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) error
}

type AuthUseCase struct {
	username string
	password string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(username, password string) *AuthUseCase {
	return &AuthUseCase{username: username, password: password}
}

// NewAuthUseCaseFromEnv reads ADMIN_USERNAME / ADMIN_PASSWORD, falling back to
// the demo credentials.
func NewAuthUseCaseFromEnv() *AuthUseCase {
	return NewAuthUseCase(
		getenvDefault("ADMIN_USERNAME", "admin"),
		getenvDefault("ADMIN_PASSWORD", "admin123"),
	)
}

func (u *AuthUseCase) Login(_ context.Context, username, password string) error {
	if username != u.username || password != u.password {
		return ErrInvalidCredentials
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
