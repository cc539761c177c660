package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// APIKeyService issues and revokes API keys. The full key is only
// returned at creation time; the database keeps a sha256 digest and
// a masked form for display.
type APIKeyService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewAPIKeyService(db *gorm.DB, activity *ActivityLogService) *APIKeyService {
	return &APIKeyService{db: db, activity: activity}
}

// List returns active keys only, newest first.
func (s *APIKeyService) List() ([]models.APIKey, error) {
	var keys []models.APIKey
	err := s.db.Where("is_active = ?", true).Order("created_at desc").Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Create generates a fresh key for the given environment and stores
// its hash. Returns the record plus the one-time plaintext key.
func (s *APIKeyService) Create(name, environment, actorID string) (*models.APIKey, string, error) {
	prefix := models.KeyPrefixLive
	if environment == models.EnvTest {
		prefix = models.KeyPrefixTest
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, "", err
	}
	fullKey := fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(secret))

	digest := sha256.Sum256([]byte(fullKey))

	key := models.APIKey{
		Name:        name,
		KeyPrefix:   prefix,
		KeyHash:     hex.EncodeToString(digest[:]),
		KeyVisible:  fullKey[len(fullKey)-4:],
		Environment: environment,
		IsActive:    true,
		CreatedBy:   actorID,
	}
	if err := s.db.Create(&key).Error; err != nil {
		return nil, "", err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("API key '%s' created (%s)", name, environment), actorID, nil)

	return &key, fullKey, nil
}

// Revoke deactivates a key. The row is kept for auditability.
func (s *APIKeyService) Revoke(id, actorID string) error {
	var key models.APIKey
	if err := s.db.Where("id = ?", id).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	now := time.Now()
	err := s.db.Model(&key).Updates(map[string]interface{}{
		"is_active":  false,
		"revoked_at": &now,
	}).Error
	if err != nil {
		return err
	}

	s.activity.Record(models.LevelWarning,
		fmt.Sprintf("API key '%s' revoked", key.Name), actorID, nil)

	return nil
}
