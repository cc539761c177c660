package handlers

import (
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"stats": stats})
}
