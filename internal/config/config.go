package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST          string
	DbPORT          string
	DbUSER          string
	DbPASSWORD      string
	DbNAME          string
	DbSSLMODE       string
	ConnectAttempts int
	ConnectDelay    time.Duration
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Admin struct {
	Username     string
	Password     string
	PasswordHash string
}

type Config struct {
	ServerPort          int
	DB                  DB
	MinIO               MinIO
	Admin               Admin
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	MaxUploadSize       int64
	SeedOnStart         bool
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

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:          getEnv("DB_HOST", "localhost"),
		DbPORT:          getEnv("DB_PORT", "5432"),
		DbUSER:          getEnv("DB_USER", "postgres"),
		DbPASSWORD:      getEnv("DB_PASSWORD", "password"),
		DbNAME:          getEnv("DB_NAME", "familycookbook"),
		DbSSLMODE:       getEnv("DB_SSLMODE", "disable"),
		ConnectAttempts: getEnvAsInt("DB_RETRY_ATTEMPTS", 10),
		ConnectDelay:    parseDuration(getEnv("DB_RETRY_DELAY", "2s"), 2*time.Second),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "recipe-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadAdmin() Admin {
	return Admin{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		Password:     getEnv("ADMIN_PASSWORD", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 8080),
		DB:                  LoadDB(),
		MinIO:               LoadMinIO(),
		Admin:               LoadAdmin(),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "12h"), 12*time.Hour),
		MaxUploadSize:       parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		SeedOnStart:         getEnvBool("SEED_ON_START", true),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}
