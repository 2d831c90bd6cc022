package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/parser"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Upload godoc
// @Summary Upload a resume file
// @Description Accepts PDF, DOCX or plain text up to 10MB and extracts the text.
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/resume/upload [post]
func (c *ResumeController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		util.BadRequest(ctx, "resume file is required")
		return
	}
	if fileHeader.Size > service.MaxResumeSize {
		util.BadRequest(ctx, util.ErrFileTooLarge.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxResumeSize+1))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	profile, err := c.ResumeService.UploadResume(ctx.Request.Context(), claims.UserID, fileHeader.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFileTooLarge), errors.Is(err, parser.ErrUnsupportedFileType):
			util.BadRequest(ctx, err.Error())
		default:
			util.UnprocessableEntity(ctx, "could not extract text from the uploaded resume")
		}
		return
	}

	util.Success(ctx, profile.Resume)
}

type ResumeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// SetText godoc
// @Summary Replace the resume with pasted text
// @Tags resume
// @Accept json
// @Produce json
// @Param body body ResumeTextRequest true "Resume text"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/resume/text [put]
func (c *ResumeController) SetText(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ResumeTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ResumeService.SetResumeText(ctx.Request.Context(), claims.UserID, req.Text)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, profile.Resume)
}

// Get godoc
// @Summary Get the stored resume
// @Tags resume
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/resume [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resume, err := c.ResumeService.GetResume(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResumeRequired) {
			util.NotFound(ctx, "no resume has been uploaded yet")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, resume)
}

// Profile godoc
// @Summary Get the full career profile
// @Tags profile
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/profile [get]
func (c *ResumeController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ResumeService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, service.NewProfileView(profile))
}
