package identity

import (
	"errors"
	"testing"

	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret")
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.Profile {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return profile
}

func TestLogin_IssuesResolvableToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)
	user := seedUser(t, db, "admin@example.com", "hunter22")

	token, profile, err := svc.Login("admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if profile.UserID != user.UserID {
		t.Errorf("login returned the wrong profile")
	}

	ident, err := svc.ResolveToken(token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if ident.ID != user.UserID || ident.Email != user.Email {
		t.Errorf("resolved identity mismatch: %+v", ident)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)
	seedUser(t, db, "admin@example.com", "hunter22")

	if _, _, err := svc.Login("admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)
	seedUser(t, db, "admin@example.com", "hunter22")

	_, _, wrongPass := svc.Login("admin@example.com", "wrong")
	_, _, noUser := svc.Login("nobody@example.com", "whatever")

	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(noUser, ErrInvalidCredentials) {
		t.Errorf("credential failures must be indistinguishable: %v vs %v", wrongPass, noUser)
	}
}

func TestLogin_NonActiveStatusRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)

	for _, status := range []string{models.StatusPending, models.StatusInactive} {
		user := seedUser(t, db, status+"@example.com", "hunter22")
		db.Model(user).Update("status", status)

		token, _, err := svc.Login(user.Email, "hunter22")
		if !errors.Is(err, ErrAccountInactive) {
			t.Errorf("status %s: expected ErrAccountInactive, got %v", status, err)
		}
		if token != "" {
			t.Errorf("status %s: no token may be issued, got %q", status, token)
		}
	}
}

func TestResolveToken_DeletedUserInvalidatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)
	seedUser(t, db, "admin@example.com", "hunter22")

	token, profile, err := svc.Login("admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.DeleteUser(profile.UserID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.ResolveToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after deletion, got %v", err)
	}
}

func TestResolveToken_Garbage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)

	if _, err := svc.ResolveToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)

	if err := svc.DeleteUser("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_UpdatesLastActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, 24)
	user := seedUser(t, db, "admin@example.com", "hunter22")

	if _, _, err := svc.Login("admin@example.com", "hunter22"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var reloaded models.Profile
	if err := db.Where("user_id = ?", user.UserID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.LastActiveAt == nil {
		t.Errorf("expected last_active_at set after login")
	}
}
