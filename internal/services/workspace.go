package services

import (
	"errors"
	"fmt"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// WorkspaceService manages workspaces and their memberships.
type WorkspaceService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewWorkspaceService(db *gorm.DB, activity *ActivityLogService) *WorkspaceService {
	return &WorkspaceService{db: db, activity: activity}
}

// List returns all workspaces with members and member profiles loaded,
// newest first.
func (s *WorkspaceService) List() ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := s.db.Preload("Members.Profile").Order("created_at desc").Find(&workspaces).Error
	if err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Update renames a workspace.
func (s *WorkspaceService) Update(id, name, actorID string) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := s.db.Where("id = ?", id).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	workspace.Name = name
	if err := s.db.Save(&workspace).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Workspace '%s' updated", name), actorID, nil)

	return &workspace, nil
}

// Delete removes a workspace and, via the cascade constraint, its
// membership rows.
func (s *WorkspaceService) Delete(id, actorID string) error {
	var workspace models.Workspace
	if err := s.db.Where("id = ?", id).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.db.Delete(&workspace).Error; err != nil {
		return err
	}

	s.activity.Record(models.LevelWarning,
		fmt.Sprintf("Workspace '%s' deleted", workspace.Name), actorID, nil)

	return nil
}
