package handlers

import (
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the public fire-and-forget signup
// notification endpoint. It never reports delivery failures to the
// caller; the signup flow must not depend on email.
type NotificationHandler struct {
	notification *services.NotificationService
}

func NewNotificationHandler(notification *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notification: notification}
}

type signupNotificationRequest struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

func (h *NotificationHandler) Notify(c *gin.Context) {
	var req signupNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.notification.NotifySignup(&models.Profile{
		UserID:   req.UserID,
		Email:    req.Email,
		FullName: req.FullName,
		Company:  req.Company,
		Position: req.Position,
	})

	response.OK(c, nil)
}
