package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinculatec/backend/internal/app/models/dto"
	"github.com/vinculatec/backend/internal/pkg/apperrors"
	"github.com/vinculatec/backend/internal/pkg/logger"
)

// HandleAPIError translates domain errors into HTTP responses. Controllers
// funnel every service error through here so the mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidStudentID, apperrors.ErrInvalidRole):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		if field := apperrors.Field(err); field != "" {
			detail = detail.WithField(field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Credenciales inválidas")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "El token ha expirado")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token inválido")))

	case errors.Is(err, apperrors.ErrStudentIDBanned):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBanned, "Este número de control está vetado de la plataforma")))

	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrNotAuthor):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "No tienes permiso para realizar esta acción")))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound, apperrors.ErrJobPostNotFound,
		apperrors.ErrProjectNotFound, apperrors.ErrAnnouncementNotFound,
		apperrors.ErrNotificationNotFound, apperrors.ErrBanNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists, apperrors.ErrUsernameExists,
		apperrors.ErrStudentIDExists, apperrors.ErrAlreadyBanned):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidState, err.Error())))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Error interno del servidor")))
	}
}
