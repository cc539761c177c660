package handlers

import (
	"errors"

	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

// serviceError maps manager errors onto the response envelope.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, "Not found")
	case errors.Is(err, services.ErrInvalidRole):
		response.BadRequest(c, "Invalid role")
	default:
		response.ServerError(c, err.Error())
	}
}
