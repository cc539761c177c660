package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type FeatureFlagHandler struct {
	flags *services.FeatureFlagService
}

func NewFeatureFlagHandler(flags *services.FeatureFlagService) *FeatureFlagHandler {
	return &FeatureFlagHandler{flags: flags}
}

func (h *FeatureFlagHandler) List(c *gin.Context) {
	flags, err := h.flags.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"flags": flags})
}

type updateFlagRequest struct {
	ID      string `json:"id" binding:"required"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

func (h *FeatureFlagHandler) Update(c *gin.Context) {
	var req updateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	flag, err := h.flags.Update(req.ID, *req.Enabled, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"flag": flag})
}
