package services

import (
	"errors"
	"fmt"

	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// UserService manages user profiles and their lifecycle. Destructive
// account operations are delegated to the identity provider so that
// credentials and profile rows stay in sync.
type UserService struct {
	db       *gorm.DB
	provider identity.Provider
	activity *ActivityLogService
}

func NewUserService(db *gorm.DB, provider identity.Provider, activity *ActivityLogService) *UserService {
	return &UserService{db: db, provider: provider, activity: activity}
}

// List returns every profile, newest first.
func (s *UserService) List() ([]models.Profile, error) {
	var users []models.Profile
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Activate flips a pending or inactive account to active.
func (s *UserService) Activate(userID, actorID string) (*models.Profile, error) {
	var user models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Status = models.StatusActive
	if err := s.db.Model(&user).Update("status", models.StatusActive).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("User %s activated", user.Email), actorID, nil)

	return &user, nil
}

// Delete removes the account from the identity provider and its
// profile row.
func (s *UserService) Delete(userID, actorID string) error {
	var user models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.provider.DeleteUser(userID); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.activity.Record(models.LevelWarning,
		fmt.Sprintf("User %s deleted", user.Email), actorID, nil)

	return nil
}

// ResetPassword triggers a provider-issued password reset email.
func (s *UserService) ResetPassword(email, actorID string) error {
	if err := s.provider.SendPasswordReset(email); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Password reset sent to %s", email), actorID, nil)

	return nil
}

// CreateProfileRequest is the public signup payload.
type CreateProfileRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Position  string `json:"position"`
}

// CreateProfile records a new signup. Accounts start as pending users
// until an admin activates them.
func (s *UserService) CreateProfile(req *CreateProfileRequest) (*models.Profile, error) {
	profile := models.Profile{
		UserID:    req.UserID,
		Email:     req.Email,
		FullName:  req.FullName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
		Role:      models.RoleUser,
		Status:    models.StatusPending,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
