package services

import (
	"testing"

	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.SystemSetting{},
		&models.FeatureFlag{},
		&models.EmailSettings{},
		&models.APIKey{},
		&models.ActivityLog{},
		&models.Workspace{},
		&models.WorkspaceMember{},
		&models.Template{},
		&models.TemplateUsage{},
		&models.Backup{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createProfile(t *testing.T, db *gorm.DB, p *models.Profile) *models.Profile {
	t.Helper()
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return p
}

func countActivityLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ActivityLog{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count activity logs: %v", err)
	}
	return n
}

func lastActivityLog(t *testing.T, db *gorm.DB) *models.ActivityLog {
	t.Helper()
	var log models.ActivityLog
	if err := db.Order("id desc").First(&log).Error; err != nil {
		t.Fatalf("failed to read activity log: %v", err)
	}
	return &log
}

// stubProvider resolves a fixed set of tokens to identities.
type stubProvider struct {
	tokens map[string]*identity.Identity
}

func (p *stubProvider) ResolveToken(token string) (*identity.Identity, error) {
	if ident, ok := p.tokens[token]; ok {
		return ident, nil
	}
	return nil, identity.ErrInvalidToken
}

func (p *stubProvider) DeleteUser(userID string) error { return nil }

func (p *stubProvider) SendPasswordReset(email string) error { return nil }
