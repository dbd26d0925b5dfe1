package handler

import (
	"errors"
	"log"
	"net/http"

	"backoffice/internal/entity"
	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy. Anything
// unrecognized is logged and surfaced as a 500 with the underlying message
// attached; this is an internal admin tool, so leaking error text to its own
// operators is an accepted trade.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, entity.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.Err(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Err("Invalid credentials."))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Err(err.Error()))
	default:
		log.Printf("API error: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrDetails("Internal Server Error", err.Error()))
	}
}
