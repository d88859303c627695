package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"briefbot-backend/internal/shared/telemetry"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// ValidationError reports a rejected registration or login field with a
// user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service manages account registration and credential checks.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a credential-backed account. Emails are normalized to
// lower case before storage and lookup.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	if len(password) < minPasswordLength {
		return User{}, &ValidationError{Message: fmt.Sprintf("Password must be at least %d characters", minPasswordLength)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	telemetry.Info("user registered", map[string]any{"userId": user.ID})
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if user.PasswordHash == "" {
		// OAuth-only account.
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Upsert returns the account for an externally verified identity, creating
// it on first login. Used by the OAuth callback.
func (s *Service) Upsert(ctx context.Context, email, fullName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return User{}, err
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	now := time.Now()
	user = User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Lost a race with a concurrent first login.
			return s.Repo.GetByEmail(ctx, email)
		}
		return User{}, err
	}
	telemetry.Info("user registered", map[string]any{"userId": user.ID, "provider": "google"})
	return user, nil
}

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Message: "Email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Message: "Please enter a valid email address"}
	}
	return nil
}
