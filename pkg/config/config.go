package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	PostgresConnStr         string
	FirebaseCredentialsPath string
	GenAIAPIKey             string
	CaptionModel            string
	AWSRegion               string
	AWSAccessKeyID          string
	AWSSecretAccessKey      string
	AWSEndpoint             string
	S3Bucket                string
	UploadDir               string
	UploadBaseURL           string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		GenAIAPIKey:             getEnv("GENAI_API_KEY", ""),
		CaptionModel:            getEnv("CAPTION_MODEL", "gemini-2.0-flash"),
		AWSRegion:               getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:          getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:             getEnv("AWS_ENDPOINT", ""),
		S3Bucket:                getEnv("S3_BUCKET_NAME", ""),
		UploadDir:               getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL:           getEnv("UPLOAD_BASE_URL", "/uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
