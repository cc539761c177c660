package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workspace groups users; deleting a workspace removes its memberships.
type Workspace struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	Name      string            `gorm:"size:200;not null" json:"name"`
	Members   []WorkspaceMember `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"workspace_members"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (Workspace) TableName() string { return "workspaces" }

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// WorkspaceMember links a profile to a workspace with a workspace-level role.
type WorkspaceMember struct {
	ID          uint     `gorm:"primaryKey" json:"-"`
	WorkspaceID string   `gorm:"size:36;index;not null" json:"-"`
	UserID      string   `gorm:"size:36;index;not null" json:"user_id"`
	Role        string   `gorm:"size:50;default:member" json:"role"`
	Profile     *Profile `gorm:"foreignKey:UserID;references:UserID" json:"profiles,omitempty"`
}

func (WorkspaceMember) TableName() string { return "workspace_members" }
