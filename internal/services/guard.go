package services

import (
	"errors"

	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// AdminIdentity is a successful guard verdict: the resolved identity plus
// the profile fields endpoints care about.
type AdminIdentity struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"name"`
	Role      string  `json:"role"`
	AdminRole *string `json:"admin_role"`
}

// AuthGuard verifies admin access: token to identity to profile to role
// predicate. It holds no state and caches no verdicts; every call
// re-resolves against the store so a revoked role locks the actor out on
// their next request.
type AuthGuard struct {
	db       *gorm.DB
	provider identity.Provider
}

func NewAuthGuard(db *gorm.DB, provider identity.Provider) *AuthGuard {
	return &AuthGuard{db: db, provider: provider}
}

// VerifyAdmin returns the acting admin for a bearer token, or one of
// ErrNoToken, ErrInvalidToken, ErrProfileNotFound, ErrUnauthorized.
// Read-only; safe to call once per request.
func (g *AuthGuard) VerifyAdmin(token string) (*AdminIdentity, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	ident, err := g.provider.ResolveToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var profile models.Profile
	if err := g.db.Where("user_id = ?", ident.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrProfileNotFound
	}

	if !profile.IsAdmin() || profile.Status != models.StatusActive {
		return nil, ErrUnauthorized
	}

	return &AdminIdentity{
		ID:        profile.UserID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		AdminRole: profile.AdminRole,
	}, nil
}
