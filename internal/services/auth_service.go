package services

import (
	"errors"
	"fmt"

	"hotelier/internal/models"
	"hotelier/internal/repositories"
)

// Domain errors surfaced to handlers as client failures. Login and
// reset-password deliberately reuse the same mismatch error so the
// response does not reveal which credential check failed.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrAccountNotFound    = errors.New("user account does not exist")
	ErrCredentialMismatch = errors.New("user email or password match not found")
)

// AuthService handles business logic for signup, login and password reset.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup registers a new user, hashes their password and issues a
// session token. No write happens unless the email is free.
func (s *AuthService) Signup(user *models.User, plainPassword string) (*models.User, string, error) {
	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	digest, err := HashPassword(plainPassword)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = digest

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent signups can pass the email check; the unique
		// constraint is the authoritative arbiter.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	created, err := s.userRepo.GetByID(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load created user: %w", err)
	}

	token, err := s.tokens.Issue(created.UserID, created.Email)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login authenticates a user and returns their record with a fresh token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrAccountNotFound
		}
		return nil, "", err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, "", ErrCredentialMismatch
	}

	token, err := s.tokens.Issue(user.UserID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResetPassword verifies the old password and stores a digest of the
// new one. The new-must-differ-from-old rule is enforced at validation,
// before this is reached.
func (s *AuthService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if !VerifyPassword(oldPassword, user.Password) {
		return ErrCredentialMismatch
	}

	digest, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(email, digest)
}

// GetUser retrieves a user by ID for profile lookups.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
