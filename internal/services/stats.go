package services

import (
	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// Stats is the dashboard counter set.
type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	ActiveUsers     int64 `json:"active_users"`
	PendingUsers    int64 `json:"pending_users"`
	TotalWorkspaces int64 `json:"total_workspaces"`
	TotalTemplates  int64 `json:"total_templates"`
	ActiveAPIKeys   int64 `json:"active_api_keys"`
}

// StatsService aggregates dashboard counters.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Get() (*Stats, error) {
	var stats Stats

	counts := []struct {
		query *gorm.DB
		dst   *int64
	}{
		{s.db.Model(&models.Profile{}), &stats.TotalUsers},
		{s.db.Model(&models.Profile{}).Where("status = ?", models.StatusActive), &stats.ActiveUsers},
		{s.db.Model(&models.Profile{}).Where("status = ?", models.StatusPending), &stats.PendingUsers},
		{s.db.Model(&models.Workspace{}), &stats.TotalWorkspaces},
		{s.db.Model(&models.Template{}), &stats.TotalTemplates},
		{s.db.Model(&models.APIKey{}).Where("is_active = ?", true), &stats.ActiveAPIKeys},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
