package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all service settings, loaded from the environment with an
// optional .env file.
type Config struct {
	ServerPort            string
	GoogleCredentialsPath string
	PaddleAPIURL          string
	GCSBucket             string
	MaxFileSize           int64
	AllowedExtensions     []string

	// Geometry tuning for the extractor. The defaults assume phone-photo
	// resolutions; override when the capture pipeline differs.
	RowBandPx         float64
	AngleToleranceDeg float64
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		ServerPort:            envOr("SERVER_PORT", "8080"),
		GoogleCredentialsPath: os.Getenv("GOOGLE_CLOUD_CREDENTIALS_PATH"),
		PaddleAPIURL:          envOr("PADDLEOCR_API_URL", "http://paddleocr:8866/predict/ocr_system"),
		GCSBucket:             os.Getenv("GCS_BUCKET"),
		MaxFileSize:           envInt64("MAX_FILE_SIZE", 10*1024*1024),
		AllowedExtensions:     strings.Split(envOr("ALLOWED_EXTENSIONS", "jpg,jpeg,png,pdf"), ","),
		RowBandPx:             envFloat("ROW_BAND_PX", 300),
		AngleToleranceDeg:     envFloat("ANGLE_TOLERANCE_DEG", 3),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return parsed
}
