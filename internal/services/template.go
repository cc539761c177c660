package services

import (
	"errors"
	"fmt"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// TemplateService manages checklist templates and their usage records.
type TemplateService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewTemplateService(db *gorm.DB, activity *ActivityLogService) *TemplateService {
	return &TemplateService{db: db, activity: activity}
}

// List returns templates with author profiles and usage loaded,
// newest first.
func (s *TemplateService) List() ([]models.Template, error) {
	var templates []models.Template
	err := s.db.Preload("CreatedUser").Preload("UpdatedUser").Preload("Usage").
		Order("created_at desc").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// Create adds a template authored by the acting admin.
func (s *TemplateService) Create(name, description, actorID string) (*models.Template, error) {
	template := models.Template{
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if err := s.db.Create(&template).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Template '%s' created", name), actorID, nil)

	return &template, nil
}

// Update changes a template's name and description.
func (s *TemplateService) Update(id, name, description, actorID string) (*models.Template, error) {
	var template models.Template
	if err := s.db.Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	template.Name = name
	template.Description = description
	template.UpdatedBy = actorID
	if err := s.db.Save(&template).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Template '%s' updated", name), actorID, nil)

	return &template, nil
}

// Delete removes a template and its usage rows.
func (s *TemplateService) Delete(id, actorID string) error {
	var template models.Template
	if err := s.db.Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.db.Delete(&template).Error; err != nil {
		return err
	}

	s.activity.Record(models.LevelWarning,
		fmt.Sprintf("Template '%s' deleted", template.Name), actorID, nil)

	return nil
}
