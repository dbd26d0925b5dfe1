package auth

import (
	"backoffice/internal/permission"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a request: the session that proved the
// identity and the role loaded fresh from the profiles table.
type Actor struct {
	SessionID string
	ProfileID uuid.UUID
	Role      permission.Role
}
