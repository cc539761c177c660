package handlers

import (
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports subsystem health.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	var pendingUsers int64
	models.GetDB().Model(&models.Profile{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingUsers)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "console",
		"components": gin.H{
			"database":      dbStatus,
			"queue_mode":    queueMode,
			"pending_users": pendingUsers,
		},
	})
}
