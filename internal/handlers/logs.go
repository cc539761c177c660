package handlers

import (
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	activity *services.ActivityLogService
}

func NewLogHandler(activity *services.ActivityLogService) *LogHandler {
	return &LogHandler{activity: activity}
}

func (h *LogHandler) List(c *gin.Context) {
	logs, err := h.activity.List(c.Query("level"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"logs": logs})
}
