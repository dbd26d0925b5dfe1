package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/entity"
	"backoffice/internal/middleware"
	"backoffice/internal/service"
	"backoffice/internal/session"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DataHandler serves the generic entity endpoint: one route multiplexing
// auth, bulk fetch, config writes and CRUD over the closed entity set, keyed
// by the entity and action query parameters plus the HTTP method.
type DataHandler struct {
	cfg      config.Config
	db       *gorm.DB
	sessions *session.Store
	entities *service.EntityService
	authSvc  *service.AuthService
}

// NewDataHandler wires the generic entity endpoint.
func NewDataHandler(cfg config.Config, db *gorm.DB, sessions *session.Store, entities *service.EntityService, authSvc *service.AuthService) *DataHandler {
	return &DataHandler{cfg: cfg, db: db, sessions: sessions, entities: entities, authSvc: authSvc}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DataHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/data", h.Handle)
	router.POST("/api/data", h.Handle)
	router.DELETE("/api/data", h.Handle)
	router.POST("/api/login", h.login)
}

// Handle routes one request by its (entity, action) pair
// @Summary      Generic entity endpoint
// @Description  Multiplexes CRUD, auth actions, bulk fetch and config writes over the entity and action query parameters
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        entity  query  string  true   "Entity name, or auth/allData/config"
// @Param        action  query  string  false  "Action: add, update, delete, addMaintenanceRecord, login, me, logout, set"
// @Success      200  {object}  response.WriteResult
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      503  {object}  response.ErrorBody
// @Router       /api/data [post]
func (h *DataHandler) Handle(c *gin.Context) {
	entityName := c.Query("entity")
	action := c.Query("action")

	if !h.configOK(c) {
		return
	}

	// Login is the only public (entity, action) pair: the mail-provider
	// proxy and the AI feed that used to share this allowlist live outside
	// this service.
	var actor auth.Actor
	isPublic := entityName == "auth" && action == "login"
	if !isPublic {
		a, err := middleware.Authenticate(c, h.sessions, h.db)
		if errors.Is(err, middleware.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, response.Err("Not authenticated. Please log in again."))
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		actor = a
	}

	switch entityName {
	case "auth":
		h.handleAuth(c, actor, action)
		return
	case "allData":
		if c.Request.Method != http.MethodGet {
			h.methodNotAllowed(c, http.MethodGet)
			return
		}
		data, err := h.entities.AllData(c.Request.Context(), actor.Role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
		return
	case "config":
		h.handleConfig(c, actor, action)
		return
	}

	e, ok := entity.Parse(entityName)
	if !ok {
		c.JSON(http.StatusBadRequest, response.Err(fmt.Sprintf("Unknown entity: %s", entityName)))
		return
	}

	switch c.Request.Method {
	case http.MethodPost:
		h.handleWrite(c, actor, e, action)
	case http.MethodDelete:
		h.handleDelete(c, actor, e)
	default:
		h.methodNotAllowed(c, http.MethodPost, http.MethodDelete)
	}
}

func (h *DataHandler) handleWrite(c *gin.Context, actor auth.Actor, e entity.Entity, action string) {
	switch action {
	case "add", "update":
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
			return
		}
		var (
			data any
			err  error
		)
		if action == "add" {
			data, err = h.entities.Add(c.Request.Context(), actor, e, payload)
		} else {
			data, err = h.entities.Update(c.Request.Context(), actor, e, payload)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Write(data))

	case "addMaintenanceRecord":
		if e != entity.Assets {
			c.JSON(http.StatusBadRequest, response.Err(fmt.Sprintf("Invalid POST action: %s", action)))
			return
		}
		var req struct {
			AssetID any            `json:"assetId"`
			Record  map[string]any `json:"record"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
			return
		}
		data, err := h.entities.AddMaintenanceRecord(c.Request.Context(), actor, req.AssetID, req.Record)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Write(data))

	default:
		c.JSON(http.StatusBadRequest, response.Err(fmt.Sprintf("Invalid POST action: %s", action)))
	}
}

func (h *DataHandler) handleDelete(c *gin.Context, actor auth.Actor, e entity.Entity) {
	var req struct {
		ID any `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	data, err := h.entities.Delete(c.Request.Context(), actor, e, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Write(data))
}

func (h *DataHandler) handleConfig(c *gin.Context, actor auth.Actor, action string) {
	if c.Request.Method != http.MethodPost || action != "set" {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request for config entity"))
		return
	}

	var req struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.entities.SetConfig(c.Request.Context(), actor.Role, req.Key, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DataHandler) handleAuth(c *gin.Context, actor auth.Actor, action string) {
	switch action {
	case "login":
		if c.Request.Method != http.MethodPost {
			h.methodNotAllowed(c, http.MethodPost)
			return
		}
		h.login(c)

	case "me":
		if c.Request.Method != http.MethodGet {
			h.methodNotAllowed(c, http.MethodGet)
			return
		}
		profile, err := h.authSvc.Me(c.Request.Context(), actor.ProfileID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": profile})

	case "logout":
		if c.Request.Method != http.MethodPost {
			h.methodNotAllowed(c, http.MethodPost)
			return
		}
		if err := h.authSvc.Logout(c.Request.Context(), actor.SessionID); err != nil {
			respondError(c, err)
			return
		}
		middleware.ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusNotFound, response.Err(fmt.Sprintf("Unknown action for auth: %s", action)))
	}
}

// login authenticates by email and password and sets the session cookie
// @Summary      Login
// @Description  Authenticates a user by email and password, setting the HttpOnly session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  object  true  "Credentials: email, password"
// @Success      200  {object}  object
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Router       /api/login [post]
func (h *DataHandler) login(c *gin.Context) {
	if !h.configOK(c) {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err("Invalid request payload"))
		return
	}

	profile, sess, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, sess.ID, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// configOK degrades the request to a 503 when required settings are absent
// or unusable. The process keeps running; only requests fail.
func (h *DataHandler) configOK(c *gin.Context) bool {
	if missing := h.cfg.MissingRequired(); len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, response.ErrDetails(
			"Server Configuration Error",
			"missing required environment variables: "+strings.Join(missing, ", "),
		))
		return false
	}
	if err := h.cfg.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrDetails("Server Configuration Error", err.Error()))
		return false
	}
	return true
}

func (h *DataHandler) methodNotAllowed(c *gin.Context, allowed ...string) {
	c.Header("Allow", strings.Join(allowed, ", "))
	c.JSON(http.StatusMethodNotAllowed, response.Err(fmt.Sprintf("Method %s not supported for this entity.", c.Request.Method)))
}
