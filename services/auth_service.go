package services

import (
	"errors"
	"fmt"
	"time"

	"task-lab/auth"
	apperrors "task-lab/errors"
	"task-lab/repositories"
)

type IAuthService interface {
	Login(username, password string) (Token, error)
	SeedCatalog(credentials map[string]string) error
}

type AuthService struct {
	users    repositories.IUserRepository
	secret   []byte
	tokenTTL time.Duration
}

type Token string

func NewAuthService(users repositories.IUserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Login checks a credential pair against the static catalog and issues a
// session token. Lookup and comparison failures collapse into the same
// generic error to prevent user enumeration.
func (s *AuthService) Login(username, password string) (Token, error) {
	req := auth.LoginRequest{Username: username, Password: password}
	if err := auth.ValidateLogin(req); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.secret, user.Username, s.tokenTTL)
	if err != nil {
		return "", apperrors.ErrTokenGeneration
	}
	return Token(token), nil
}

// SeedCatalog hashes and stores the static credentials. Hashing happens
// here so the repository never sees a plain password; existing users are
// left untouched, keeping the seed idempotent.
func (s *AuthService) SeedCatalog(credentials map[string]string) error {
	for username, password := range credentials {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hashing failed for %s: %w", username, err)
		}
		if err := s.users.Create(username, hashed); err != nil {
			return err
		}
	}
	return nil
}
