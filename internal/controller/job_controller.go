package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type JobController struct {
	JobRoleService *service.JobRoleService
}

func NewJobController(jobRoleService *service.JobRoleService) *JobController {
	return &JobController{JobRoleService: jobRoleService}
}

// List godoc
// @Summary List available job roles
// @Tags jobs
// @Produce json
// @Success 200 {object} util.Response{data=[]model.JobRole}
// @Router /api/jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	roles, err := c.JobRoleService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roles)
}

// Get godoc
// @Summary Get one job role
// @Tags jobs
// @Produce json
// @Param id path int true "Job role ID"
// @Success 200 {object} util.Response{data=model.JobRole}
// @Failure 404 {object} util.Response
// @Router /api/jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid job role id")
		return
	}

	role, err := c.JobRoleService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrJobRoleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, role)
}

type CreateJobRequest struct {
	Title           string               `json:"title" binding:"required"`
	Description     string               `json:"description" binding:"required"`
	Category        string               `json:"category"`
	ExperienceLevel string               `json:"experienceLevel"`
	RequiredSkills  model.RequiredSkills `json:"requiredSkills"`
	AverageSalary   model.SalaryRange    `json:"averageSalary"`
}

// Create godoc
// @Summary Create a job role
// @Tags jobs
// @Accept json
// @Produce json
// @Param body body CreateJobRequest true "Job role definition"
// @Success 201 {object} util.Response{data=model.JobRole}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	role := &model.JobRole{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		ExperienceLevel: req.ExperienceLevel,
		RequiredSkills:  req.RequiredSkills,
		AverageSalary:   req.AverageSalary,
	}

	if err := c.JobRoleService.Create(role); err != nil {
		if errors.Is(err, util.ErrJobRoleExists) {
			util.Conflict(ctx, err.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, role)
}
