package services

import (
	"errors"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// EmailSettingsUpdate carries a partial patch of the singleton row.
// Nil fields are left untouched.
type EmailSettingsUpdate struct {
	NotificationSignups *bool   `json:"notification_signups"`
	SMTPHost            *string `json:"smtp_host"`
	SMTPPort            *int    `json:"smtp_port"`
	SMTPUsername        *string `json:"smtp_username"`
	SMTPPassword        *string `json:"smtp_password"`
	FromAddress         *string `json:"from_address"`
	UseTLS              *bool   `json:"use_tls"`
}

// EmailSettingsService manages the single email_settings row.
type EmailSettingsService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewEmailSettingsService(db *gorm.DB, activity *ActivityLogService) *EmailSettingsService {
	return &EmailSettingsService{db: db, activity: activity}
}

// Get returns the stored row, or in-memory defaults when none exists yet.
func (s *EmailSettingsService) Get() (*models.EmailSettings, error) {
	var settings models.EmailSettings
	err := s.db.First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			enabled := true
			return &models.EmailSettings{NotificationSignups: &enabled, UseTLS: true}, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Update patches the existing row or inserts the first one. Reads then
// writes without a transaction; concurrent first writes can race.
func (s *EmailSettingsService) Update(patch *EmailSettingsUpdate, actorID string) (*models.EmailSettings, error) {
	var settings models.EmailSettings
	err := s.db.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if patch.NotificationSignups != nil {
		settings.NotificationSignups = patch.NotificationSignups
	}
	if patch.SMTPHost != nil {
		settings.SMTPHost = *patch.SMTPHost
	}
	if patch.SMTPPort != nil {
		settings.SMTPPort = *patch.SMTPPort
	}
	if patch.SMTPUsername != nil {
		settings.SMTPUsername = *patch.SMTPUsername
	}
	if patch.SMTPPassword != nil {
		settings.SMTPPassword = *patch.SMTPPassword
	}
	if patch.FromAddress != nil {
		settings.FromAddress = *patch.FromAddress
	}
	if patch.UseTLS != nil {
		settings.UseTLS = *patch.UseTLS
	}
	settings.UpdatedBy = actorID

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo, "Email settings updated", actorID, nil)

	return &settings, nil
}
