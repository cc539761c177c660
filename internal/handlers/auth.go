package handlers

import (
	"errors"

	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	provider *identity.Service
	guard    *services.AuthGuard
	activity *services.ActivityLogService
}

func NewAuthHandler(provider *identity.Service, guard *services.AuthGuard, activity *services.ActivityLogService) *AuthHandler {
	return &AuthHandler{provider: provider, guard: guard, activity: activity}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin by email and password and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, profile, err := h.provider.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		if errors.Is(err, identity.ErrAccountInactive) {
			response.Forbidden(c, "Unauthorized")
			return
		}
		response.ServerError(c, err.Error())
		return
	}

	if !profile.IsAdmin() {
		response.Forbidden(c, "Unauthorized")
		return
	}

	h.activity.Record(models.LevelInfo, "Admin login: "+profile.Email, profile.UserID, nil)

	response.OK(c, gin.H{"token": token, "user": profile})
}

// Logout is stateless; tokens expire on their own. Exists so clients
// have a symmetric call to make.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, nil)
}

// Verify resolves the bearer token to an admin identity.
func (h *AuthHandler) Verify(c *gin.Context) {
	admin, err := h.guard.VerifyAdmin(middleware.BearerToken(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoToken):
			response.Unauthorized(c, "No token provided")
		case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrProfileNotFound):
			response.Unauthorized(c, "Invalid token")
		default:
			response.Forbidden(c, "Unauthorized")
		}
		return
	}

	response.OK(c, gin.H{"user": admin})
}

// Me returns the caller's profile. Requires the admin middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.provider.GetByID(middleware.GetActorID(c))
	if err != nil {
		response.Unauthorized(c, "Invalid token")
		return
	}
	response.OK(c, gin.H{"user": profile})
}
