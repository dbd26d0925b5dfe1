package session

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/database"
	"backoffice/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func createProfile(t *testing.T, db *gorm.DB) model.Profile {
	t.Helper()
	p := model.Profile{
		Email:        "admin@infoco.com.br",
		Name:         "Administrador",
		Role:         model.RoleAdmin,
		Department:   "Diretoria",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	profile := createProfile(t, db)
	store := NewStore(db, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, profile.ID)
	require.NoError(t, err)
	assert.Len(t, sess.ID, 64) // 32 random bytes, hex encoded
	assert.Equal(t, profile.ID, sess.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, profile.ID, got.UserID)
}

func TestGetUnknownToken(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, time.Hour)

	_, err := store.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetExpiredSessionIsPurged(t *testing.T) {
	db := openTestDB(t)
	profile := createProfile(t, db)
	store := NewStore(db, time.Hour)
	ctx := context.Background()

	expired := model.Session{
		ID:        "expiredtoken",
		UserID:    profile.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := store.Get(ctx, expired.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired row is deleted on sight.
	var count int64
	require.NoError(t, db.Model(&model.Session{}).Where("id = ?", expired.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	profile := createProfile(t, db)
	store := NewStore(db, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, profile.ID)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionsCascadeWithProfile(t *testing.T) {
	db := openTestDB(t)
	profile := createProfile(t, db)
	store := NewStore(db, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, profile.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Profile{}, "id = ?", profile.ID).Error)

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
