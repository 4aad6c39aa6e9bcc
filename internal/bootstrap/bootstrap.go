// Package bootstrap wires configuration, storage, services and controllers
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	appControllers "github.com/vinculatec/backend/internal/app/controllers"
	appRepos "github.com/vinculatec/backend/internal/app/repositories"
	appRoutes "github.com/vinculatec/backend/internal/app/routes"
	appServices "github.com/vinculatec/backend/internal/app/services"
	"github.com/vinculatec/backend/internal/config"
	"github.com/vinculatec/backend/internal/db"
	appMiddleware "github.com/vinculatec/backend/internal/middleware"
	pkgAuth "github.com/vinculatec/backend/internal/pkg/auth"
	"github.com/vinculatec/backend/internal/pkg/email"
	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/pkg/mediastore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	AdminService           appServices.AdminService
	UserService            appServices.UserService
	JobPostService         appServices.JobPostService
	ProjectService         appServices.ProjectService
	NotificationService    appServices.NotificationService
	AnnouncementService    appServices.AnnouncementService
	CleanupService         appServices.CleanupService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	AdminController        *appControllers.AdminController
	JobPostController      *appControllers.JobPostController
	ProjectController      *appControllers.ProjectController
	NotificationController *appControllers.NotificationController
	AnnouncementController *appControllers.AnnouncementController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	MediaStore             mediastore.Store
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("level", cfg.Logging.Level).
		Str("format", cfg.Logging.Format).
		Msg("logger configured")

	return cfg, nil
}

// SetupDatabase connects to MongoDB and ensures indexes
func SetupDatabase(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	client, database, err := db.Connect(cfg.Mongo.URI, cfg.Mongo.Database, cfg.MongoConnectTimeout())
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout())
	defer cancel()

	if err := db.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return client, database, nil
}

// buildMediaStore selects the media backend from configuration
func buildMediaStore(cfg *config.Config) (mediastore.Store, error) {
	if cfg.Media.Mode == "http" {
		return mediastore.NewHTTPStore(mediastore.HTTPConfig{
			BaseURL: cfg.Media.BaseURL,
			APIKey:  cfg.Media.APIKey,
		}, logger.New("mediastore")), nil
	}
	return mediastore.NewLocalStore(cfg.Media.StoragePath, cfg.Media.PublicURL, logger.New("mediastore"))
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, database *mongo.Database) (*Dependencies, error) {
	deps := &Dependencies{}

	userRepo := appRepos.NewMongoUserRepository(database)
	bannedRepo := appRepos.NewMongoBannedUserRepository(database)
	jobRepo := appRepos.NewMongoJobPostRepository(database)
	projectRepo := appRepos.NewMongoProjectPostRepository(database)
	notificationRepo := appRepos.NewMongoNotificationRepository(database)
	announcementRepo := appRepos.NewMongoAnnouncementRepository(database)

	media, err := buildMediaStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}
	deps.MediaStore = media

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, logger.New("email"))

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.NotificationService = appServices.NewNotificationService(notificationRepo)
	deps.AuthService = appServices.NewAuthService(userRepo, bannedRepo, deps.JWTService, emailService, cfg.App.FrontendURL)
	deps.AdminService = appServices.NewAdminService(userRepo, bannedRepo, emailService, cfg.App.FrontendURL)
	deps.UserService = appServices.NewUserService(userRepo, media)
	deps.JobPostService = appServices.NewJobPostService(jobRepo)
	deps.ProjectService = appServices.NewProjectService(projectRepo, deps.NotificationService, media)
	deps.AnnouncementService = appServices.NewAnnouncementService(announcementRepo, media)
	deps.CleanupService = appServices.NewCleanupService(jobRepo, projectRepo, deps.NotificationService, media, cfg.CleanupPurgeAfter())

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.JobPostController = appControllers.NewJobPostController(deps.JobPostService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.AdminController,
		deps.JobPostController,
		deps.ProjectController,
		deps.NotificationController,
		deps.AnnouncementController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router
}
