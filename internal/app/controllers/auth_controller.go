// Package controllers handles HTTP request handling
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

// AuthController handles registration and authentication endpoints
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger.New("auth_controller"),
	}
}

// Signup registers a new egresado account
// @Summary Register a new egresado account
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", user.Username).Msg("account registered")
	ctx.JSON(http.StatusCreated, user)
}

// Login authenticates an account and issues a token
// @Summary Authenticate and obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout acknowledges a sign-out. Tokens are stateless, so the client
// discards its copy; nothing is revoked server-side.
// @Summary Sign out
// @Tags auth
// @Produce json
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Sesión cerrada"})
}

// Me returns the authenticated account
// @Summary Current account
// @Tags auth
// @Produce json
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.GetCurrentUser(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
