package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filebox-backend/auth"
	"filebox-backend/models"
	"filebox-backend/repository"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor used when hashing new passwords
const bcryptCost = 10

// UserRepository is the persistence contract the auth service needs
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles registration and login
type AuthService struct {
	userRepo  UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// WithUserRepository sets the user repository
func WithUserRepository(repo UserRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.userRepo = repo
	}
}

// WithTokenConfig sets the signing secret and token lifetime
func WithTokenConfig(secret string, ttl time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		s.jwtSecret = []byte(secret)
		s.tokenTTL = ttl
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user with a bcrypt hash of the password. The
// plaintext is never stored.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown username
// and wrong password both return ErrInvalidCredentials; the caller cannot
// tell which one happened.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.userRepo == nil {
		return "", errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
