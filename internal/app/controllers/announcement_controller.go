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

// AnnouncementController handles institutional announcements
type AnnouncementController struct {
	announcementService services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger.New("announcement_controller"),
	}
}

// List returns announcements newest-first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	announcements, err := c.announcementService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// Create publishes an announcement (administrators only)
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	a, err := c.announcementService.Create(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req.Content, req.Image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", a.ID).Msg("announcement published")
	ctx.JSON(http.StatusCreated, a)
}

// Delete removes an announcement (administrators only)
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	if err := c.announcementService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Aviso eliminado"})
}
