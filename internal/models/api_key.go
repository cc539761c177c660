package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// API key environments and their key prefixes.
const (
	EnvProduction = "production"
	EnvTest       = "test"

	KeyPrefixLive = "sk_live"
	KeyPrefixTest = "sk_test"
)

// APIKey stores a one-way hash of the issued key. The plaintext is
// returned exactly once, at creation; only the prefix and the last four
// characters of the random portion remain visible. Keys are revoked by
// soft-delete (is_active=false), never removed.
type APIKey struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	KeyPrefix   string     `gorm:"size:20;not null" json:"key_prefix"`
	KeyHash     string     `gorm:"uniqueIndex;size:64;not null" json:"-"` // sha256 hex
	KeyVisible  string     `gorm:"size:8" json:"key_visible"` // last 4 of the random portion
	Environment string     `gorm:"size:20;not null" json:"environment"` // production, test
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastUsedAt  *time.Time `json:"last_used_at"`
	RevokedAt   *time.Time `json:"revoked_at"`
	CreatedBy   string     `gorm:"size:36" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (APIKey) TableName() string { return "api_keys" }

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}
