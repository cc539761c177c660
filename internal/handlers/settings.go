package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.GetAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

type updateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	setting, err := h.settings.Update(req.Key, req.Value, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"setting": setting})
}
