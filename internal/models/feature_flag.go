package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeatureFlag is a boolean toggle administered from the console.
type FeatureFlag struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Enabled   bool      `gorm:"default:false" json:"enabled"`
	UpdatedBy string    `gorm:"size:36" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FeatureFlag) TableName() string { return "feature_flags" }

func (f *FeatureFlag) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
