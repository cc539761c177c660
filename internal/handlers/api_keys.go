package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type APIKeyHandler struct {
	keys *services.APIKeyService
}

func NewAPIKeyHandler(keys *services.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keys: keys}
}

func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.keys.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"keys": keys})
}

type createKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	Environment string `json:"environment"`
}

func (h *APIKeyHandler) Create(c *gin.Context) {
	var req createKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Environment == "" {
		req.Environment = models.EnvProduction
	}
	if req.Environment != models.EnvProduction && req.Environment != models.EnvTest {
		response.BadRequest(c, "Invalid environment")
		return
	}

	key, fullKey, err := h.keys.Create(req.Name, req.Environment, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	// fullKey is shown here and never again
	response.OK(c, gin.H{"key": key, "fullKey": fullKey})
}

func (h *APIKeyHandler) Revoke(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "Missing key id")
		return
	}

	if err := h.keys.Revoke(id, middleware.GetActorID(c)); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}
