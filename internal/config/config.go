package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	Driver string
	Conn   string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

type Config struct {
	ServerPort      int
	DB              DB
	StorageBackend  string
	UploadDir       string
	MinIO           MinIO
	SessionSecret   string
	SessionDuration time.Duration
	MaxUploadSize   int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 168 * time.Hour
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		Driver: getEnv("DB_DRIVER", "sqlite3"),
		Conn:   getEnv("DB_CONN", "./photoshare.db"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		StorageBackend:  getEnv("STORAGE_BACKEND", "local"),
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),
		MinIO:           LoadMinIO(),
		SessionSecret:   getEnv("SESSION_SECRET", "your_secret_key"),
		SessionDuration: parseDuration(getEnv("SESSION_DURATION", "168h")),
		MaxUploadSize:   parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}
}
