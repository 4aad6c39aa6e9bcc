package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/app/services"
	"github.com/vinculatec/backend/internal/middleware"
)

// NotificationController handles the caller's notification inbox
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List returns the caller's notifications newest-first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	notifications, err := c.notificationService.GetForUser(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead marks one notification as read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notificación leída"})
}

// MarkAllRead marks the whole inbox as read
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Router /notifications/read-all [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.notificationService.MarkAllRead(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notificaciones leídas"})
}

// Delete removes one notification
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Router /notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	if err := c.notificationService.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notificación eliminada"})
}
