package services

import (
	"fmt"
	"time"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService manages the system_settings key/value rows.
type SettingsService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewSettingsService(db *gorm.DB, activity *ActivityLogService) *SettingsService {
	return &SettingsService{db: db, activity: activity}
}

// GetAll folds every setting row into a single key to value map.
func (s *SettingsService) GetAll() (map[string]string, error) {
	var rows []models.SystemSetting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Get returns a single value, or the fallback when the key is absent.
func (s *SettingsService) Get(key, fallback string) string {
	var row models.SystemSetting
	if err := s.db.Where(map[string]interface{}{"key": key}).First(&row).Error; err != nil {
		return fallback
	}
	return row.Value
}

// Update upserts one key by its unique constraint, last write wins.
func (s *SettingsService) Update(key, value, actorID string) (*models.SystemSetting, error) {
	row := models.SystemSetting{
		Key:       key,
		Value:     value,
		UpdatedBy: actorID,
		UpdatedAt: time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("System setting '%s' updated to '%s'", key, value), actorID, nil)

	return &row, nil
}
