package services

import (
	"encoding/json"
	"time"

	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/pkg/logger"
	"gorm.io/gorm"
)

// ActivityLogService appends and lists the admin audit trail. Writes are
// best-effort: a failed append must never fail the mutation that
// triggered it, so Record reports failures only to the process log.
type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

// ListPageSize is the fixed page size for log listing.
const ListPageSize = 100

// Record appends one audit row attributed to actorID. The actor's email
// is denormalized at write time; a failed lookup degrades to a null
// email instead of failing the write.
func (s *ActivityLogService) Record(level, message string, actorID string, metadata interface{}) {
	entry := models.ActivityLog{
		Level:   level,
		Message: message,
	}

	if actorID != "" {
		entry.UserID = &actorID
		var profile models.Profile
		if err := s.db.Select("email").Where("user_id = ?", actorID).First(&profile).Error; err == nil {
			entry.UserEmail = &profile.Email
		}
	}

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			entry.Metadata = string(b)
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		logger.Warn().Err(err).Str("message", message).Msg("failed to write activity log")
	}
}

// List returns the newest entries, optionally filtered by level.
func (s *ActivityLogService) List(level string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	query := s.db.Model(&models.ActivityLog{})
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if err := query.Order("created_at DESC").Limit(ListPageSize).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Cleanup deletes entries older than retentionDays and returns the count.
func (s *ActivityLogService) Cleanup(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}
