package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/arkodeep/socially/backend/internal/caption"
	"github.com/arkodeep/socially/backend/internal/handlers"
	"github.com/arkodeep/socially/backend/internal/middleware"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/arkodeep/socially/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, assistant *caption.Assistant, uploader storage.Uploader, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	); err != nil {
		return err
	}
	log.Info("database migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// Reads work without a principal; mutations require one. The optional
	// group still parses a token when present so reads can personalize.
	public := e.Group("/api/v1", middleware.FirebaseAuth(firebaseAuthClient, false))
	protected := e.Group("/api/v1", middleware.FirebaseAuth(firebaseAuthClient, true))

	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo)
	userHandler.RegisterUserRoutes(public, protected)

	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(public, protected)

	likeHandler := handlers.NewLikeHandler(likeRepo, userRepo)
	likeHandler.RegisterLikeRoutes(public, protected)

	commentHandler := handlers.NewCommentHandler(commentRepo, userRepo)
	commentHandler.RegisterCommentRoutes(public, protected)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(public, protected)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(protected)

	captionHandler := handlers.NewCaptionHandler(assistant, userRepo)
	captionHandler.RegisterCaptionRoutes(protected)

	uploadHandler := handlers.NewUploadHandler(uploader, userRepo)
	uploadHandler.RegisterUploadRoutes(protected)

	log.Info("all routes configured")
	return nil
}
