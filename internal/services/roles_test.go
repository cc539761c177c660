package services

import (
	"errors"
	"testing"

	"github.com/forgenova/console/internal/models"
)

func TestUpdateRole_ClosedEnum(t *testing.T) {
	tests := []struct {
		role          string
		wantRole      string
		wantAdminRole *string
		wantErr       error
	}{
		{"editor", models.RoleUser, strPtr(models.AdminRoleEditor), nil},
		{"super_admin", models.RoleUser, strPtr(models.AdminRoleSuperAdmin), nil},
		{"admin", models.RoleAdmin, nil, nil},
		{"user", models.RoleUser, nil, nil},
		{"owner", "", nil, ErrInvalidRole},
		{"SUPER_ADMIN", "", nil, ErrInvalidRole},
		{"", "", nil, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run("role="+tt.role, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewRoleService(db, NewActivityLogService(db))
			profile := createProfile(t, db, &models.Profile{
				Email:     "target@example.com",
				Role:      models.RoleAdmin,
				AdminRole: strPtr(models.AdminRoleEditor),
				Status:    models.StatusActive,
			})

			updated, err := svc.UpdateRole(profile.UserID, tt.role, "actor-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if n := countActivityLogs(t, db); n != 0 {
					t.Errorf("rejected update must not log, got %d rows", n)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Role != tt.wantRole {
				t.Errorf("expected role %s, got %s", tt.wantRole, updated.Role)
			}
			if (updated.AdminRole == nil) != (tt.wantAdminRole == nil) {
				t.Fatalf("admin_role nil mismatch: got %v", updated.AdminRole)
			}
			if tt.wantAdminRole != nil && *updated.AdminRole != *tt.wantAdminRole {
				t.Errorf("expected admin_role %s, got %s", *tt.wantAdminRole, *updated.AdminRole)
			}
			if n := countActivityLogs(t, db); n != 1 {
				t.Errorf("expected 1 activity log, got %d", n)
			}
		})
	}
}

func TestUpdateRole_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(db, NewActivityLogService(db))

	if _, err := svc.UpdateRole("missing", "editor", "actor-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListAdmins_OnlyAdminRoles(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(db, NewActivityLogService(db))

	createProfile(t, db, &models.Profile{
		Email: "b@example.com", FullName: "Beta",
		AdminRole: strPtr(models.AdminRoleEditor), Status: models.StatusActive,
	})
	createProfile(t, db, &models.Profile{
		Email: "a@example.com", FullName: "Alpha",
		AdminRole: strPtr(models.AdminRoleSuperAdmin), Status: models.StatusActive,
	})
	createProfile(t, db, &models.Profile{
		Email: "c@example.com", FullName: "Gamma",
		Role: models.RoleUser, Status: models.StatusActive,
	})

	admins, err := svc.ListAdmins()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("expected 2 admins, got %d", len(admins))
	}
	if admins[0].FullName != "Alpha" || admins[1].FullName != "Beta" {
		t.Errorf("expected name ordering Alpha, Beta; got %s, %s",
			admins[0].FullName, admins[1].FullName)
	}
}
