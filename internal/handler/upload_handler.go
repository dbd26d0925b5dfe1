package handler

import (
	"net/http"

	"backoffice/internal/blob"
	"backoffice/internal/middleware"
	"backoffice/internal/session"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadHandler proxies file upload and deletion to the blob store.
type UploadHandler struct {
	store    blob.Store // nil when blob storage is not configured
	sessions *session.Store
	db       *gorm.DB
}

// NewUploadHandler returns a new UploadHandler. store may be nil; requests
// then fail with 503.
func NewUploadHandler(store blob.Store, sessions *session.Store, db *gorm.DB) *UploadHandler {
	return &UploadHandler{store: store, sessions: sessions, db: db}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("", middleware.RequireSession(h.sessions, h.db))
	{
		uploads.POST("/api/upload", h.Upload)
		uploads.DELETE("/api/upload", h.Delete)
	}
}

// Upload streams the request body into the blob store
// @Summary      Upload a file
// @Description  Streams the raw request body to the blob store under the given filename
// @Tags         files
// @Produce      json
// @Param        filename  query  string  true  "Object name"
// @Success      200  {object}  blob.Object
// @Failure      400  {object}  response.ErrorBody
// @Failure      503  {object}  response.ErrorBody
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.Err("File storage is not configured on the server."))
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, response.Err("`filename` query parameter is required."))
		return
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		c.JSON(http.StatusBadRequest, response.Err("The request body appears to be empty."))
		return
	}

	obj, err := h.store.Put(c.Request.Context(), filename, c.Request.Body, c.Request.ContentLength, c.GetHeader("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrDetails("Failed to upload file.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, obj)
}

// Delete removes a stored file by its public URL
// @Summary      Delete a file
// @Description  Deletes the blob the given public URL points at
// @Tags         files
// @Produce      json
// @Param        url  query  string  true  "Public URL of the object"
// @Success      200  {object}  object
// @Failure      400  {object}  response.ErrorBody
// @Failure      503  {object}  response.ErrorBody
// @Router       /api/upload [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.Err("File storage is not configured on the server."))
		return
	}

	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, response.Err("`url` query parameter is required for deletion."))
		return
	}

	if err := h.store.Delete(c.Request.Context(), url); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrDetails("Failed to delete file.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
