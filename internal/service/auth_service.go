package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/model"
	"backoffice/internal/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles login, session issuance and the authenticated-profile
// lookups behind the auth sub-router.
type AuthService struct {
	db       *gorm.DB
	sessions *session.Store
}

// NewAuthService returns a new AuthService.
func NewAuthService(db *gorm.DB, sessions *session.Store) *AuthService {
	return &AuthService{db: db, sessions: sessions}
}

// Login verifies credentials and issues a session. Unknown email, missing
// stored hash and wrong password all collapse into the same
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Profile, *model.Session, error) {
	if email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	var profile model.Profile
	err := s.db.WithContext(ctx).First(&profile, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if profile.PasswordHash == "" {
		log.Printf("Profile %s has no password hash stored", profile.Email)
		return nil, nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, profile.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, profile.ID)
	if err != nil {
		return nil, nil, err
	}
	return &profile, sess, nil
}

// Me returns the profile for the authenticated session.
func (s *AuthService) Me(ctx context.Context, profileID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).First(&profile, "id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout deletes the caller's session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
