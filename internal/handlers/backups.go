package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backups *services.BackupService
}

func NewBackupHandler(backups *services.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.backups.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"backups": backups})
}

func (h *BackupHandler) Create(c *gin.Context) {
	backup, err := h.backups.Create(middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"backup": backup})
}
