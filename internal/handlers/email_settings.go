package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type EmailSettingsHandler struct {
	settings *services.EmailSettingsService
}

func NewEmailSettingsHandler(settings *services.EmailSettingsService) *EmailSettingsHandler {
	return &EmailSettingsHandler{settings: settings}
}

func (h *EmailSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

func (h *EmailSettingsHandler) Update(c *gin.Context) {
	var req services.EmailSettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settings.Update(&req, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}
