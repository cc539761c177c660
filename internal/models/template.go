package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template is a reusable document template administered from the console.
type Template struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	CreatedBy   string          `gorm:"size:36" json:"created_by"`
	UpdatedBy   string          `gorm:"size:36" json:"updated_by"`
	CreatedUser *Profile        `gorm:"foreignKey:CreatedBy;references:UserID" json:"created_user,omitempty"`
	UpdatedUser *Profile        `gorm:"foreignKey:UpdatedBy;references:UserID" json:"updated_user,omitempty"`
	Usage       []TemplateUsage `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template_usage"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Template) TableName() string { return "templates" }

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TemplateUsage records where a template has been applied.
type TemplateUsage struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	TemplateID  string `gorm:"size:36;index;not null" json:"-"`
	WorkspaceID string `gorm:"size:36;index" json:"workspace_id"`
	UsedFor     string `gorm:"size:200" json:"used_for"`
}

func (TemplateUsage) TableName() string { return "template_usage" }
