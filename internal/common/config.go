package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	OCR      OCRConfig
	Pipeline PipelineConfig
	Store    StoreConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// PipelineConfig holds processing-related configuration
type PipelineConfig struct {
	MinTextLength  int           // OCR-need gate threshold (stripped length)
	KeepText       bool          // carry acquired text on results for auditing
	ProfilePath    string        // optional keyword-profile override JSON
	AcquireTimeout time.Duration // upper bound for acquiring one document
}

// StoreConfig holds result-persistence configuration
type StoreConfig struct {
	SQLitePath  string
	PostgresDSN string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Pipeline: PipelineConfig{
			MinTextLength:  getEnvAsInt("MIN_TEXT_LENGTH", 100),
			KeepText:       getEnvAsBool("KEEP_TEXT", false),
			ProfilePath:    getEnv("PROFILE_PATH", ""),
			AcquireTimeout: getEnvAsDuration("ACQUIRE_TIMEOUT", 2*time.Minute),
		},
		Store: StoreConfig{
			SQLitePath:  getEnv("SQLITE_PATH", ""),
			PostgresDSN: getEnv("DB_URL", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
