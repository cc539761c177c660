package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	workspaces *services.WorkspaceService
}

func NewWorkspaceHandler(workspaces *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces}
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaces.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"workspaces": workspaces})
}

type updateWorkspaceRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	var req updateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	workspace, err := h.workspaces.Update(req.ID, req.Name, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"workspace": workspace})
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "Missing workspace id")
		return
	}

	if err := h.workspaces.Delete(id, middleware.GetActorID(c)); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}
