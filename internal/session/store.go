package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session"

const tokenBytes = 32

// ErrNotFound is returned for unknown and expired sessions alike; callers
// must not be able to tell the two apart.
var ErrNotFound = errors.New("session not found or expired")

// Store manages server-side sessions in the sessions table.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewStore returns a Store issuing sessions with the given lifetime.
func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create issues a new session for the profile and persists it.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (*model.Session, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	sess := model.Session{
		ID:        hex.EncodeToString(buf),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// Get resolves a token to its session. Expired sessions are deleted on sight
// and reported as ErrNotFound.
func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	var sess model.Session
	err := s.db.WithContext(ctx).First(&sess, "id = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = s.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", token).Error
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Delete removes a session, logging the caller out.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", token).Error
}
