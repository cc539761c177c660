package models

import "time"

// SystemSetting is one key/value row of system-wide configuration.
// Endpoints fold all rows into a single map for display.
type SystemSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedBy string    `gorm:"size:36" json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }
