package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/services"
	"github.com/vinculatec/backend/internal/middleware"
	"github.com/vinculatec/backend/internal/pkg/logger"
)

// JobPostController handles job posting endpoints
type JobPostController struct {
	jobService services.JobPostService
	logger     zerolog.Logger
}

// NewJobPostController creates a new JobPostController
func NewJobPostController(jobService services.JobPostService) *JobPostController {
	return &JobPostController{
		jobService: jobService,
		logger:     logger.New("job_post_controller"),
	}
}

// List returns job postings, optionally filtered by status
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Param status query string false "Filter by status"
// @Router /jobs [get]
func (c *JobPostController) List(ctx *gin.Context) {
	posts, err := c.jobService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetByID returns one job posting
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Router /jobs/{id} [get]
func (c *JobPostController) GetByID(ctx *gin.Context) {
	post, err := c.jobService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Create publishes a job posting
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Router /jobs [post]
func (c *JobPostController) Create(ctx *gin.Context) {
	var req dto.CreateJobPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.jobService.Create(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", post.ID).Str("title", post.Title).Msg("job posting created")
	ctx.JSON(http.StatusCreated, post)
}

// Update edits a job posting (author only)
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Router /jobs/{id} [put]
func (c *JobPostController) Update(ctx *gin.Context) {
	var req dto.UpdateJobPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.jobService.Update(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// ChangeStatus sets a job posting's status (author only)
// @Summary Change a job posting's status
// @Tags jobs
// @Accept json
// @Produce json
// @Router /jobs/{id}/status [put]
func (c *JobPostController) ChangeStatus(ctx *gin.Context) {
	var req dto.ChangeJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.jobService.ChangeStatus(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete removes a job posting (author only)
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Router /jobs/{id} [delete]
func (c *JobPostController) Delete(ctx *gin.Context) {
	if err := c.jobService.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Vacante eliminada"})
}
