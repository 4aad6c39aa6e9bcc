package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vinculatec/backend/internal/app/controllers"
	"github.com/vinculatec/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	jobPostController *controllers.JobPostController,
	projectController *controllers.ProjectController,
	notificationController *controllers.NotificationController,
	announcementController *controllers.AnnouncementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/logout", authController.Logout)

		users := authenticated.Group("/users")
		{
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/:username", userController.GetProfile)
		}

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobPostController.List)
			jobs.GET("/:id", jobPostController.GetByID)
			jobs.PUT("/:id", jobPostController.Update)
			jobs.PUT("/:id/status", jobPostController.ChangeStatus)
			jobs.DELETE("/:id", jobPostController.Delete)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.List)
			projects.POST("", projectController.Create)
			projects.GET("/:id", projectController.GetByID)
			projects.PUT("/:id", projectController.Update)
			projects.DELETE("/:id", projectController.Delete)
			projects.POST("/:id/like", projectController.ToggleLike)
			projects.POST("/:id/interest", projectController.ToggleInterest)
			projects.POST("/:id/comments", projectController.AddComment)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PUT("/read-all", notificationController.MarkAllRead)
			notifications.PUT("/:id/read", notificationController.MarkRead)
			notifications.DELETE("/:id", notificationController.Delete)
		}

		authenticated.GET("/announcements", announcementController.List)

		// --- Administrator routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/jobs", jobPostController.Create)

			admin.POST("/announcements", announcementController.Create)
			admin.DELETE("/announcements/:id", announcementController.Delete)

			adminUsers := admin.Group("/admin")
			{
				adminUsers.GET("/users", adminController.GetAllUsers)
				adminUsers.POST("/users", adminController.CreateUser)
				adminUsers.PUT("/users/:id/role", adminController.UpdateRole)
				adminUsers.PUT("/users/:id/password", adminController.ResetPassword)
				adminUsers.DELETE("/users/:id", adminController.DeleteUser)
				adminUsers.POST("/users/:id/ban", adminController.BanUser)
				adminUsers.GET("/bans", adminController.GetBannedUsers)
				adminUsers.DELETE("/bans/:studentId", adminController.UnbanUser)
			}
		}
	}
}
