package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"backoffice/internal/config"
	"backoffice/internal/seed"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupHandler serves the one-time database seeding endpoint, guarded by a
// shared secret compared in constant time.
type SetupHandler struct {
	cfg config.Config
	db  *gorm.DB
}

// NewSetupHandler returns a new SetupHandler.
func NewSetupHandler(cfg config.Config, db *gorm.DB) *SetupHandler {
	return &SetupHandler{cfg: cfg, db: db}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *SetupHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/setup", h.Setup)
}

// Setup seeds an empty database
// @Summary      One-time database setup
// @Description  Seeds default accounts and settings. Guarded by the SETUP_SECRET shared secret; refuses to run twice.
// @Tags         setup
// @Produce      json
// @Param        secret  query  string  true  "Setup secret"
// @Success      200  {object}  object
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      409  {object}  object
// @Router       /api/setup [post]
func (h *SetupHandler) Setup(c *gin.Context) {
	if h.cfg.SetupSecret == "" {
		c.JSON(http.StatusInternalServerError, response.Err("SETUP_SECRET is not configured on the server."))
		return
	}

	provided := c.Query("secret")
	if provided == "" {
		c.JSON(http.StatusUnauthorized, response.Err("Setup secret not provided."))
		return
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.cfg.SetupSecret)) != 1 {
		c.JSON(http.StatusForbidden, response.Err("Invalid setup secret."))
		return
	}

	err := seed.Run(c.Request.Context(), h.db)
	if errors.Is(err, seed.ErrAlreadySeeded) {
		c.JSON(http.StatusConflict, gin.H{"message": "The database has already been seeded. No action was taken."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrDetails("Internal server error during seeding.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully."})
}
