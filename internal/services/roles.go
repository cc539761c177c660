package services

import (
	"errors"
	"fmt"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// RoleService manages admin role assignments on profiles.
type RoleService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewRoleService(db *gorm.DB, activity *ActivityLogService) *RoleService {
	return &RoleService{db: db, activity: activity}
}

// ListAdmins returns every profile that carries an admin role, by name.
func (s *RoleService) ListAdmins() ([]models.Profile, error) {
	var admins []models.Profile
	err := s.db.Where("admin_role IS NOT NULL").Order("full_name asc").Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// UpdateRole assigns one of the known roles to a user. "editor" and
// "super_admin" land in admin_role, "admin" promotes the base role,
// "user" demotes and clears admin_role.
func (s *RoleService) UpdateRole(userID, role, actorID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch role {
	case models.AdminRoleEditor, models.AdminRoleSuperAdmin:
		r := role
		profile.AdminRole = &r
		profile.Role = models.RoleUser
	case models.RoleAdmin:
		profile.Role = models.RoleAdmin
		profile.AdminRole = nil
	case models.RoleUser:
		profile.Role = models.RoleUser
		profile.AdminRole = nil
	default:
		return nil, ErrInvalidRole
	}

	err := s.db.Model(&profile).Select("role", "admin_role").Updates(map[string]interface{}{
		"role":       profile.Role,
		"admin_role": profile.AdminRole,
	}).Error
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Role for %s changed to '%s'", profile.Email, role), actorID, nil)

	return &profile, nil
}
