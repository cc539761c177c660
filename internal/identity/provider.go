// Package identity owns credentials and bearer tokens. It is the only
// place tokens are issued or resolved; authorization decisions stay in
// the guard, which re-resolves every request against the profile store so
// a role revocation takes effect immediately.
package identity

import (
	"errors"
	"time"

	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
)

// Identity is the resolved owner of a bearer token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Provider is the narrow surface other components depend on.
type Provider interface {
	// ResolveToken exchanges a bearer token for the identity that owns it.
	ResolveToken(token string) (*Identity, error)
	// DeleteUser removes the identity and its profile.
	DeleteUser(userID string) error
	// SendPasswordReset emails a reset link to the given address.
	SendPasswordReset(email string) error
}

// Mailer delivers password-reset mail. Implemented by the notification
// service; injected to keep this package free of SMTP concerns.
type Mailer interface {
	SendPasswordReset(email string) error
}

// Service is the store-backed Provider. Login issues JWTs after a bcrypt
// check against the profile row; there is no session table and no other
// login path.
type Service struct {
	db         *gorm.DB
	mailer     Mailer
	expireHour int
}

func NewService(db *gorm.DB, mailer Mailer, expireHour int) *Service {
	if expireHour <= 0 {
		expireHour = 24
	}
	return &Service{db: db, mailer: mailer, expireHour: expireHour}
}

// Login authenticates by email and password and returns a bearer token
// plus the profile. Credential and existence failures are collapsed into
// ErrInvalidCredentials so callers cannot probe for accounts.
func (s *Service) Login(email, password string) (string, *models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(password, profile.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	// Pending and deactivated accounts hold no token. Status is checked
	// before issuance, not left to the per-request guard alone.
	if profile.Status != models.StatusActive {
		return "", nil, ErrAccountInactive
	}

	token, err := utils.GenerateToken(profile.UserID, profile.Email, profile.Role, s.expireHour)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	profile.LastActiveAt = &now
	s.db.Model(&models.Profile{}).Where("user_id = ?", profile.UserID).Update("last_active_at", now)

	return token, &profile, nil
}

// ResolveToken validates the token signature and confirms the subject
// still exists. A deleted user invalidates all outstanding tokens.
func (s *Service) ResolveToken(token string) (*Identity, error) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var profile models.Profile
	if err := s.db.Select("user_id", "email").Where("user_id = ?", claims.UserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &Identity{ID: profile.UserID, Email: profile.Email}, nil
}

func (s *Service) GetByID(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// DeleteUser removes the identity record; the profile row is the identity
// record here, matching the upstream cascade semantics.
func (s *Service) DeleteUser(userID string) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SendPasswordReset confirms the address belongs to a known user and
// mails a reset link.
func (s *Service) SendPasswordReset(email string) error {
	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.mailer == nil {
		return errors.New("mail transport not configured")
	}
	return s.mailer.SendPasswordReset(profile.Email)
}
