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

// UserController handles profile endpoints
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger.New("user_controller"),
	}
}

// GetProfile returns a public profile by username
// @Summary Get a profile
// @Tags users
// @Produce json
// @Router /users/{username} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.userService.GetByUsername(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile edits the caller's own profile
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
