package handlers

import (
	"github.com/forgenova/console/internal/middleware"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/pkg/response"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templates *services.TemplateService
}

func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"templates": templates})
}

type createTemplateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templates.Create(req.Name, req.Description, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"template": template})
}

type updateTemplateRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templates.Update(req.ID, req.Name, req.Description, middleware.GetActorID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"template": template})
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "Missing template id")
		return
	}

	if err := h.templates.Delete(id, middleware.GetActorID(c)); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}
