package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
)

type AuthService struct {
	userRepo ports.UserRepo
	tokens   ports.TokenIssuer
}

func NewAuthService(userRepo ports.UserRepo, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Signup creates an account and returns the new user id.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupInput) (int64, error) {
	if input.Email == "" || input.Password == "" {
		return 0, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:          input.Email,
		HashedPassword: string(hash),
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

// Login verifies credentials and issues an access token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
