package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role constants for Profile.Role
const (
	RoleAdmin       = "admin"
	RoleDirector    = "director"
	RoleCoordinator = "coordinator"
	RoleSupport     = "support"
)

// Profile represents a system user account. The password hash is never
// serialized; password changes go through a dedicated path, not the generic
// entity update.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Role         string    `gorm:"type:varchar(50);not null" json:"role"` // admin, director, coordinator, support
	Department   string    `gorm:"type:varchar(100);not null" json:"department"`
	Pfp          *string   `gorm:"type:varchar(255)" json:"pfp"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
}

// BeforeCreate assigns the id when the caller did not.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Session binds an opaque token to a profile with an expiry timestamp.
// Sessions are cascade-deleted with their profile.
type Session struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User      Profile   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

// UpdatePost is an announcement on the dashboard feed. The author is always
// the authenticated profile, never client-supplied.
type UpdatePost struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"authorId"`
	Author    Profile   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
