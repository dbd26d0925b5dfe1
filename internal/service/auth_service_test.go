package service

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/model"
	"backoffice/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB, *session.Store) {
	t.Helper()
	db := openTestDB(t)
	sessions := session.NewStore(db, time.Hour)
	return NewAuthService(db, sessions), db, sessions
}

func createUser(t *testing.T, db *gorm.DB, email, password string) model.Profile {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	p := model.Profile{Email: email, Name: "Usuário", Role: model.RoleSupport, Department: "Suporte", PasswordHash: hash}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestLogin(t *testing.T) {
	svc, db, sessions := newAuthService(t)
	ctx := context.Background()
	user := createUser(t, db, "suporte@infoco.com.br", "senhaPadrao123")

	profile, sess, err := svc.Login(ctx, "suporte@infoco.com.br", "senhaPadrao123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	require.NotNil(t, sess)

	got, err := sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc, db, _ := newAuthService(t)
	createUser(t, db, "suporte@infoco.com.br", "senhaPadrao123")

	profile, _, err := svc.Login(context.Background(), "Suporte@Infoco.com.BR", "senhaPadrao123")
	require.NoError(t, err)
	assert.Equal(t, "suporte@infoco.com.br", profile.Email)
}

func TestLoginFailures(t *testing.T) {
	svc, db, _ := newAuthService(t)
	ctx := context.Background()
	createUser(t, db, "suporte@infoco.com.br", "senhaPadrao123")

	// Profiles created outside the normal flow may have no hash; they must
	// not be able to log in with any password.
	noHash := model.Profile{Email: "sem.senha@infoco.com.br", Name: "Sem Senha", Role: model.RoleSupport, Department: "Suporte", PasswordHash: ""}
	require.NoError(t, db.Create(&noHash).Error)

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"wrong password", "suporte@infoco.com.br", "senhaErrada", ErrInvalidCredentials},
		{"unknown email", "ninguem@infoco.com.br", "senhaPadrao123", ErrInvalidCredentials},
		{"no hash stored", "sem.senha@infoco.com.br", "qualquer", ErrInvalidCredentials},
		{"missing email", "", "senhaPadrao123", ErrValidation},
		{"missing password", "suporte@infoco.com.br", "", ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMe(t *testing.T) {
	svc, db, _ := newAuthService(t)
	ctx := context.Background()
	user := createUser(t, db, "suporte@infoco.com.br", "senhaPadrao123")

	profile, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogout(t *testing.T) {
	svc, db, sessions := newAuthService(t)
	ctx := context.Background()
	createUser(t, db, "suporte@infoco.com.br", "senhaPadrao123")

	_, sess, err := svc.Login(ctx, "suporte@infoco.com.br", "senhaPadrao123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))

	_, err = sessions.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
