package controller

import (
	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// ForSkill godoc
// @Summary Get learning resources for a skill
// @Tags resources
// @Produce json
// @Param skill path string true "Skill name"
// @Param level query string false "Current level" default(beginner)
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/resources/{skill} [get]
func (c *ResourceController) ForSkill(ctx *gin.Context) {
	skill := ctx.Param("skill")
	if skill == "" {
		util.BadRequest(ctx, "skill is required")
		return
	}

	resources := c.ResourceService.ForSkill(ctx.Request.Context(), skill, ctx.Query("level"))
	util.Success(ctx, gin.H{"resources": resources})
}
