package middleware

import (
	"errors"
	"net/http"
	"os"

	"backoffice/internal/auth"
	"backoffice/internal/model"
	"backoffice/internal/permission"
	"backoffice/internal/session"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrNotAuthenticated covers a missing, unknown or expired session cookie,
// and a session whose profile row no longer exists.
var ErrNotAuthenticated = errors.New("not authenticated")

const actorKey = "actor"

// Authenticate resolves the session cookie to an Actor. The role is loaded
// fresh from the profiles table on every call; roles are never cached, so a
// role change takes effect on the next request.
func Authenticate(c *gin.Context, sessions *session.Store, db *gorm.DB) (auth.Actor, error) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		return auth.Actor{}, ErrNotAuthenticated
	}

	sess, err := sessions.Get(c.Request.Context(), token)
	if errors.Is(err, session.ErrNotFound) {
		return auth.Actor{}, ErrNotAuthenticated
	}
	if err != nil {
		return auth.Actor{}, err
	}

	var profile model.Profile
	err = db.WithContext(c.Request.Context()).
		Select("id", "role").
		First(&profile, "id = ?", sess.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.Actor{}, ErrNotAuthenticated
	}
	if err != nil {
		return auth.Actor{}, err
	}

	return auth.Actor{
		SessionID: sess.ID,
		ProfileID: profile.ID,
		Role:      permission.Role(profile.Role),
	}, nil
}

// RequireSession aborts with 401 unless the request carries a valid session.
// The resolved Actor is stored on the context for handlers.
func RequireSession(sessions *session.Store, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := Authenticate(c, sessions, db)
		if errors.Is(err, ErrNotAuthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("Not authenticated. Please log in again."))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrDetails("Internal Server Error", err.Error()))
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the Actor stored by RequireSession.
func ActorFrom(c *gin.Context) (auth.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return auth.Actor{}, false
	}
	actor, ok := v.(auth.Actor)
	return actor, ok
}

// SetSessionCookie sets the HttpOnly session cookie.
// Production (cross-origin): SameSiteNoneMode + Secure=true.
// Development (same-site):   SameSiteLaxMode  + Secure=false.
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite, secure := cookiePolicy()
	c.SetSameSite(sameSite)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	sameSite, secure := cookiePolicy()
	c.SetSameSite(sameSite)
	c.SetCookie(session.CookieName, "", -1, "/", "", secure, true)
}

func cookiePolicy() (http.SameSite, bool) {
	if os.Getenv("GIN_MODE") == "release" {
		return http.SameSiteNoneMode, true
	}
	return http.SameSiteLaxMode, false
}
