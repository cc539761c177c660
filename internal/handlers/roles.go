package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roles *services.RoleService
}

func NewRoleHandler(roles *services.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

func (h *RoleHandler) List(c *gin.Context) {
	admins, err := h.roles.ListAdmins()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"admins": admins})
}

type updateRoleRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (h *RoleHandler) Update(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.roles.UpdateRole(req.UserID, req.Role, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"user": user})
}
