package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	SessionCookieName string

	EmailSender string
	SendGridKey string

	// S3-compatible object storage (Cloudflare R2 style). When the bucket is
	// unset, uploads fall back to local disk under UploadDir.
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageRegion    string
	StorageEndpoint  string
	StoragePublicURL string

	UploadDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", ""),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session_token"),

		EmailSender: getEnv("EMAIL_SENDER", "no-reply@learnhub.io"),
		SendGridKey: getEnv("SENDGRID_API_KEY", ""),

		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		StorageRegion:    getEnv("STORAGE_REGION", "auto"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StoragePublicURL: getEnv("STORAGE_PUBLIC_URL", ""),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	// The token secret is required before any request is served
	if AppConfig.JWTKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set. Refusing to start without a token secret.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Email notifications are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
