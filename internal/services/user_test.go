package services

import (
	"errors"
	"testing"

	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/models"
)

type nullMailer struct{ sent []string }

func (m *nullMailer) SendPasswordReset(email string) error {
	m.sent = append(m.sent, email)
	return nil
}

func TestCreateProfile_DefaultsToPendingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, identity.NewService(db, &nullMailer{}, 24), NewActivityLogService(db))

	profile, err := svc.CreateProfile(&CreateProfileRequest{
		UserID:   "11111111-1111-1111-1111-111111111111",
		Email:    "new@example.com",
		FullName: "New User",
		Company:  "Acme",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if profile.Role != models.RoleUser {
		t.Errorf("expected role user, got %s", profile.Role)
	}
	if profile.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", profile.Status)
	}
}

func TestActivateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, identity.NewService(db, &nullMailer{}, 24), NewActivityLogService(db))

	profile := createProfile(t, db, &models.Profile{
		Email: "pending@example.com", Status: models.StatusPending, Role: models.RoleUser,
	})

	user, err := svc.Activate(profile.UserID, "actor-1")
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if user.Status != models.StatusActive {
		t.Errorf("expected active, got %s", user.Status)
	}
	if n := countActivityLogs(t, db); n != 1 {
		t.Errorf("expected 1 activity log, got %d", n)
	}
}

func TestDeleteUser_RemovesProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, identity.NewService(db, &nullMailer{}, 24), NewActivityLogService(db))

	profile := createProfile(t, db, &models.Profile{
		Email: "doomed@example.com", Status: models.StatusActive, Role: models.RoleUser,
	})

	if err := svc.Delete(profile.UserID, "actor-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var n int64
	db.Model(&models.Profile{}).Where("user_id = ?", profile.UserID).Count(&n)
	if n != 0 {
		t.Errorf("profile not deleted")
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, identity.NewService(db, &nullMailer{}, 24), NewActivityLogService(db))

	if err := svc.Delete("missing", "actor-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResetPassword_SendsMail(t *testing.T) {
	db := setupTestDB(t)
	mailer := &nullMailer{}
	svc := NewUserService(db, identity.NewService(db, mailer, 24), NewActivityLogService(db))

	createProfile(t, db, &models.Profile{
		Email: "forgetful@example.com", Status: models.StatusActive, Role: models.RoleUser,
	})

	if err := svc.ResetPassword("forgetful@example.com", "actor-1"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "forgetful@example.com" {
		t.Errorf("expected one reset mail to forgetful@example.com, got %v", mailer.sent)
	}
}
