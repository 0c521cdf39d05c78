package config

import (
	"log"
	"os"
	"strings"
	"time"

	"roomie_feed/models"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	APIBaseURL string
	StubToken  string // token the stub API accepts, any bearer token when empty
	StubStore  string // memory or dynamo
	SeedFile   string // JSON array of candidates loaded into the memory store
	AWSRegion  string
	S3Bucket   string

	CandidatesTable    string
	SwipesTable        string
	SwipeFailuresTable string

	FeedUserID    string
	FeedAuthToken string
	FeedTTL       time.Duration
	FeedTimeout   time.Duration
}

// Load reads .env when present and falls back to the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		APIBaseURL:         getEnvOrDefault("API_BASE_URL", "http://localhost:8080"),
		StubToken:          getEnvOrDefault("STUB_TOKEN", ""),
		StubStore:          strings.ToLower(getEnvOrDefault("STUB_STORE", "memory")),
		SeedFile:           getEnvOrDefault("SEED_FILE", ""),
		AWSRegion:          getEnvOrDefault("AWS_REGION", ""),
		S3Bucket:           getEnvOrDefault("S3_BUCKET_NAME", ""),
		CandidatesTable:    getEnvOrDefault("CANDIDATES_TABLE", models.CandidatesTable),
		SwipesTable:        getEnvOrDefault("SWIPES_TABLE", models.SwipesTable),
		SwipeFailuresTable: getEnvOrDefault("SWIPE_FAILURES_TABLE", ""),
		FeedUserID:         getEnvOrDefault("FEED_USER_ID", ""),
		FeedAuthToken:      getEnvOrDefault("FEED_AUTH_TOKEN", ""),
		FeedTTL:            getDurationOrDefault("FEED_TTL", models.DefaultFeedTTL),
		FeedTimeout:        getDurationOrDefault("FEED_REQUEST_TIMEOUT", models.DefaultRequestTimeout),
	}
}

// AWSEnabled reports whether a region was configured
func (c *Config) AWSEnabled() bool {
	return c.AWSRegion != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
