package services

import (
	"errors"
	"fmt"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// FeatureFlagService toggles named feature flags.
type FeatureFlagService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewFeatureFlagService(db *gorm.DB, activity *ActivityLogService) *FeatureFlagService {
	return &FeatureFlagService{db: db, activity: activity}
}

// List returns all flags ordered by name.
func (s *FeatureFlagService) List() ([]models.FeatureFlag, error) {
	var flags []models.FeatureFlag
	if err := s.db.Order("name asc").Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

// Update flips a flag and records who did it.
func (s *FeatureFlagService) Update(id string, enabled bool, actorID string) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	if err := s.db.Where("id = ?", id).First(&flag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	flag.Enabled = enabled
	flag.UpdatedBy = actorID
	if err := s.db.Save(&flag).Error; err != nil {
		return nil, err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Feature flag '%s' %s", flag.Name, state), actorID, nil)

	return &flag, nil
}
