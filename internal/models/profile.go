package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile role values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Finer-grained admin privilege tags layered on top of Role.
const (
	AdminRoleEditor     = "editor"
	AdminRoleSuperAdmin = "super_admin"
)

// Profile status values.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Profile is the application-level record for an identity: role, status
// and contact fields. Created by the public signup flow with role=user,
// status=pending; activated by an admin.
type Profile struct {
	UserID       string     `gorm:"primaryKey;size:36" json:"user_id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	FullName     string     `gorm:"size:200" json:"full_name"`
	FirstName    string     `gorm:"size:100" json:"first_name"`
	LastName     string     `gorm:"size:100" json:"last_name"`
	Company      string     `gorm:"size:200" json:"company"`
	Position     string     `gorm:"size:200" json:"position"`
	Role         string     `gorm:"size:50;default:user" json:"role"`      // user, admin
	AdminRole    *string    `gorm:"size:50" json:"admin_role"`             // editor, super_admin
	Status       string     `gorm:"size:20;default:pending" json:"status"` // pending, active, inactive
	LastActiveAt *time.Time `json:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.UserID == "" {
		p.UserID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether this profile carries admin privileges: either
// the coarse role is admin or an admin_role tag is set.
func (p *Profile) IsAdmin() bool {
	if p.Role == RoleAdmin {
		return true
	}
	if p.AdminRole == nil {
		return false
	}
	return *p.AdminRole == AdminRoleSuperAdmin || *p.AdminRole == AdminRoleEditor
}
