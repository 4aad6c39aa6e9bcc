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

// ProjectController handles project posting endpoints
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger.New("project_controller"),
	}
}

// List returns project postings filtered by status, authorship or interest
// @Summary List projects
// @Tags projects
// @Produce json
// @Param status query string false "Filter by status"
// @Param created query string false "Only the caller's projects (true)"
// @Param interested query string false "Only projects the caller follows (true)"
// @Router /projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	var q dto.ProjectListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Parámetros de consulta inválidos")))
		return
	}

	posts, err := c.projectService.List(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetByID returns one project posting
// @Summary Get a project
// @Tags projects
// @Produce json
// @Router /projects/{id} [get]
func (c *ProjectController) GetByID(ctx *gin.Context) {
	post, err := c.projectService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Create publishes a project posting
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.projectService.Create(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", post.ID).Str("title", post.Title).Msg("project created")
	ctx.JSON(http.StatusCreated, post)
}

// Update edits a project posting (author only)
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.projectService.Update(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete removes a project posting and its media asset (author only)
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	if err := c.projectService.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Proyecto eliminado"})
}

// ToggleLike adds or removes the caller's like
// @Summary Toggle a like
// @Tags projects
// @Produce json
// @Router /projects/{id}/like [post]
func (c *ProjectController) ToggleLike(ctx *gin.Context) {
	post, _, err := c.projectService.ToggleLike(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// ToggleInterest adds or removes the caller's interest entry
// @Summary Toggle interest
// @Tags projects
// @Produce json
// @Router /projects/{id}/interest [post]
func (c *ProjectController) ToggleInterest(ctx *gin.Context) {
	post, interested, err := c.projectService.ToggleInterest(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Interés eliminado"
	if interested {
		message = "Interés registrado"
	}

	ctx.JSON(http.StatusOK, dto.ToggleInterestResponse{
		Message:    message,
		Interested: interested,
		Project:    post,
	})
}

// AddComment appends a comment to a project
// @Summary Comment on a project
// @Tags projects
// @Accept json
// @Produce json
// @Router /projects/{id}/comments [post]
func (c *ProjectController) AddComment(ctx *gin.Context) {
	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	post, err := c.projectService.AddComment(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}
