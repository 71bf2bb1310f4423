package main

import (
	"context"
	"log"

	"github.com/arkodeep/socially/backend/internal/caption"
	"github.com/arkodeep/socially/backend/internal/router"
	"github.com/arkodeep/socially/backend/pkg/config"
	"github.com/arkodeep/socially/backend/pkg/firebase"
	"github.com/arkodeep/socially/backend/pkg/logger"
	"github.com/arkodeep/socially/backend/pkg/storage"
	"github.com/arkodeep/socially/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db)

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		zlog.Fatal("failed to initialize Firebase", zap.Error(err))
	}

	// Caption assistant degrades to "not configured" without a credential
	var completer caption.Client
	if cfg.GenAIAPIKey != "" {
		client, err := caption.NewGenAIClient(ctx, cfg.GenAIAPIKey, cfg.CaptionModel)
		if err != nil {
			zlog.Fatal("failed to initialize GenAI client", zap.Error(err))
		}
		completer = client
	} else {
		zlog.Warn("GENAI_API_KEY not set, caption assistant disabled")
	}
	assistant := caption.NewAssistant(completer, zlog)

	// Upload destination: S3 when a bucket is configured, local directory
	// otherwise
	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		uploader, err = storage.NewS3Uploader(storage.S3Config{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.AWSEndpoint,
			Bucket:          cfg.S3Bucket,
		})
	} else {
		uploader, err = storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	}
	if err != nil {
		zlog.Fatal("failed to initialize upload storage", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db, firebaseApp.AuthClient, assistant, uploader, zlog); err != nil {
		zlog.Fatal("failed to set up routes", zap.Error(err))
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
