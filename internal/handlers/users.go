package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users        *services.UserService
	notification *services.NotificationService
}

func NewUserHandler(users *services.UserService, notification *services.NotificationService) *UserHandler {
	return &UserHandler{users: users, notification: notification}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"users": users})
}

type userActionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *UserHandler) Activate(c *gin.Context) {
	var req userActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.Activate(req.UserID, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	var req userActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.users.Delete(req.UserID, middleware.GetActorID(c)); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

type resetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.users.ResetPassword(req.Email, middleware.GetActorID(c)); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// CreateProfile is the public signup hook: records the profile and
// queues the admin notification.
func (h *UserHandler) CreateProfile(c *gin.Context) {
	var req services.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.users.CreateProfile(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	h.notification.NotifySignup(profile)

	response.OK(c, gin.H{"profile": profile})
}
