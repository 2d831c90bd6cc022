package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type AnalysisController struct {
	AnalysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{AnalysisService: analysisService}
}

// Analyze godoc
// @Summary Run a skill gap analysis
// @Description Compares the stored resume against a stored or custom job role.
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body service.AnalysisRequest true "Target role"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/analysis [post]
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	analysis, err := c.AnalysisService.Analyze(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResumeRequired):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrJobRoleNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, ai.ErrNoAPIKey):
			util.Error(ctx, 500, "AI service is not configured")
		case ai.IsMalformed(err):
			util.Error(ctx, 500, "Failed to process AI response. Please try again.")
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, analysis)
}

// Get godoc
// @Summary Get the stored skill gap analysis
// @Tags analysis
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/analysis [get]
func (c *AnalysisController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	analysis, err := c.AnalysisService.GetAnalysis(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrAnalysisRequired) {
			util.NotFound(ctx, "no analysis has been run yet")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, analysis)
}
