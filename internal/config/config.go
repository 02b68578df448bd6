package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the full environment-backed configuration surface.
type Config struct {
	Port        string
	UploadDir   string
	OutputDir   string
	FrontendDir string
	FrontendURL string

	GeminiAPIKey     string
	GeminiModel      string
	TranslateTimeout time.Duration

	OCRLanguage    string
	OCRConcurrency int64

	MaxUploadSize int64

	// When OutputBucket is set, generated documents are committed to GCS
	// instead of the local output directory.
	OutputBucket string

	// When ProjectID is set, conversion records are written to Firestore.
	ProjectID           string
	FirestoreCollection string
}

// Load reads configuration from the process environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		OutputDir:   getEnv("OUTPUT_DIR", "output"),
		FrontendDir: getEnv("FRONTEND_DIR", "public"),
		FrontendURL: getEnv("FRONTEND_URL", ""),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "models/gemini-2.5-flash"),
		TranslateTimeout: time.Duration(getEnvAsInt("TRANSLATE_TIMEOUT", 60)) * time.Second,

		OCRLanguage:    getEnv("OCR_LANGUAGE", "eng"),
		OCRConcurrency: int64(getEnvAsInt("OCR_CONCURRENCY", 0)),

		MaxUploadSize: int64(getEnvAsInt("MAX_UPLOAD_SIZE", 25)) << 20,

		OutputBucket: getEnv("OUTPUT_BUCKET", ""),

		ProjectID:           getEnv("PROJECT_ID", ""),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", "conversions"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
