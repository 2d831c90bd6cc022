package controller

import (
	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Get godoc
// @Summary Get progress summary
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetDetailed godoc
// @Summary Get per-skill progress and a 30-day completion timeline
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/progress/detailed [get]
func (c *ProgressController) GetDetailed(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detailed, err := c.ProgressService.GetDetailed(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detailed)
}
