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

// AdminController handles administrator endpoints: account management and
// the ban ledger
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger.New("admin_controller"),
	}
}

// CreateUser creates an account with any role
// @Summary Create an account
// @Tags admin
// @Accept json
// @Produce json
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	user, err := c.adminService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("account created")
	ctx.JSON(http.StatusCreated, user)
}

// GetAllUsers lists every account
// @Summary List accounts
// @Tags admin
// @Produce json
// @Router /admin/users [get]
func (c *AdminController) GetAllUsers(ctx *gin.Context) {
	users, err := c.adminService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// UpdateRole changes an account's role
// @Summary Change an account's role
// @Tags admin
// @Accept json
// @Produce json
// @Router /admin/users/{id}/role [put]
func (c *AdminController) UpdateRole(ctx *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	user, err := c.adminService.UpdateRole(ctx.Request.Context(), ctx.Param("id"), req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ResetPassword sets a new password for an account
// @Summary Reset an account's password
// @Tags admin
// @Accept json
// @Produce json
// @Router /admin/users/{id}/password [put]
func (c *AdminController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	if err := c.adminService.ResetPassword(ctx.Request.Context(), ctx.Param("id"), req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Contraseña restablecida"})
}

// DeleteUser removes an account without touching the ban ledger
// @Summary Delete an account
// @Tags admin
// @Produce json
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	if err := c.adminService.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Cuenta eliminada"})
}

// BanUser enters the account's student ID in the ban ledger and deletes
// the account
// @Summary Ban an egresado account
// @Tags admin
// @Accept json
// @Produce json
// @Router /admin/users/{id}/ban [post]
func (c *AdminController) BanUser(ctx *gin.Context) {
	var req dto.BanUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cuerpo de la petición inválido")))
		return
	}

	ban, err := c.adminService.BanUser(ctx.Request.Context(),
		ctx.Param("id"), req.Reason, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ban)
}

// UnbanUser removes a ban ledger entry
// @Summary Lift a ban
// @Tags admin
// @Produce json
// @Router /admin/bans/{studentId} [delete]
func (c *AdminController) UnbanUser(ctx *gin.Context) {
	if err := c.adminService.UnbanUser(ctx.Request.Context(), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Veto eliminado"})
}

// GetBannedUsers lists the ban ledger
// @Summary List the ban ledger
// @Tags admin
// @Produce json
// @Router /admin/bans [get]
func (c *AdminController) GetBannedUsers(ctx *gin.Context) {
	bans, err := c.adminService.GetBannedUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bans)
}
