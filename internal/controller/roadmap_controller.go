package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

func stepIndexParam(ctx *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(ctx.Param("stepIndex"))
	if err != nil || idx < 0 {
		util.BadRequest(ctx, "invalid step index")
		return 0, false
	}
	return idx, true
}

func (c *RoadmapController) mapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAnalysisRequired),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrInvalidStatus),
		errors.Is(err, util.ErrIncompleteAnswer),
		errors.Is(err, util.ErrInvalidAnswer):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrStepNotFound):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrRoadmapNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// Generate godoc
// @Summary Generate (or regenerate) the learning roadmap
// @Tags roadmap
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.Generate(ctx.Request.Context(), claims.UserID)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

// Get godoc
// @Summary Get the stored roadmap
// @Tags roadmap
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.Get(claims.UserID)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

type StepStatusRequest struct {
	Status model.StepStatus `json:"status" binding:"required"`
}

// UpdateStep godoc
// @Summary Update a roadmap step's status
// @Description Completion is refused with requiresQuiz=true while the step's quiz is unpassed.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param stepIndex path int true "Step index"
// @Param body body StepStatusRequest true "New status"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap/step/{stepIndex} [put]
func (c *RoadmapController) UpdateStep(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	idx, ok := stepIndexParam(ctx)
	if !ok {
		return
	}

	var req StepStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RoadmapService.UpdateStepStatus(ctx.Request.Context(), claims.UserID, idx, req.Status)
	if err != nil {
		if errors.Is(err, util.ErrQuizRequired) {
			ctx.JSON(http.StatusBadRequest, util.Response{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
				Data:    result,
			})
			return
		}
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Playlists godoc
// @Summary Get YouTube playlists for a roadmap step
// @Tags roadmap
// @Produce json
// @Param stepIndex path int true "Step index"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap/step/{stepIndex}/youtube [get]
func (c *RoadmapController) Playlists(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	idx, ok := stepIndexParam(ctx)
	if !ok {
		return
	}

	playlists, err := c.RoadmapService.StepPlaylists(ctx.Request.Context(), claims.UserID, idx)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"playlists": playlists})
}

// GenerateQuiz godoc
// @Summary Get or generate the quiz for a roadmap step
// @Description Correct answers are never included before submission.
// @Tags roadmap
// @Produce json
// @Param stepIndex path int true "Step index"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap/step/{stepIndex}/quiz [post]
func (c *RoadmapController) GenerateQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	idx, ok := stepIndexParam(ctx)
	if !ok {
		return
	}

	quiz, err := c.RoadmapService.GenerateQuiz(ctx.Request.Context(), claims.UserID, idx)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

type QuizSubmitRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Requires an answer for every question; passing needs at least 80% correct.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param stepIndex path int true "Step index"
// @Param body body QuizSubmitRequest true "Answers, one letter per question"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/roadmap/step/{stepIndex}/quiz/submit [post]
func (c *RoadmapController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	idx, ok := stepIndexParam(ctx)
	if !ok {
		return
	}

	var req QuizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RoadmapService.SubmitQuiz(ctx.Request.Context(), claims.UserID, idx, req.Answers)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
