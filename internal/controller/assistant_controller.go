package controller

import (
	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type AssistantController struct {
	AssistantService *service.AssistantService
}

func NewAssistantController(assistantService *service.AssistantService) *AssistantController {
	return &AssistantController{AssistantService: assistantService}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary Ask the career assistant a question
// @Description Answers with the user's role, progress and recent conversation as context.
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Question"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/assistant/chat [post]
func (c *AssistantController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.AssistantService.Chat(ctx.Request.Context(), claims.UserID, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reply": reply})
}
