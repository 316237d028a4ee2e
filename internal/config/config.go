package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type DB struct {
	DbHOST         string
	DbPORT         string
	DbUSER         string
	DbPASSWORD     string
	DbNAME         string
	DbSSLMODE      string
	MigrationsPath string
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

type Config struct {
	ServerPort             int
	Environment            string
	DB                     DB
	MinIO                  MinIO
	JWTSecretKey           string
	BcryptCost             int
	AllowAdminRegistration bool
	CORSOrigins            []string
	MaxUploadSize          int64
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	ShutdownTimeout        time.Duration
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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

func getEnvList(key string, fallback string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadDB() DB {
	return DB{
		DbHOST:         getEnv("DB_HOST", "localhost"),
		DbPORT:         getEnv("DB_PORT", "5432"),
		DbUSER:         getEnv("DB_USER", "postgres"),
		DbPASSWORD:     getEnv("DB_PASSWORD", "password"),
		DbNAME:         getEnv("DB_NAME", "luxestate"),
		DbSSLMODE:      getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}

func LoadMinIO() MinIO {
	endpoint := getEnv("MINIO_ENDPOINT", "localhost:9000")
	useSSL := getEnvBool("MINIO_USE_SSL", false)

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return MinIO{
		Endpoint:   endpoint,
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "property-images"),
		UseSSL:     useSSL,
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  strings.TrimSuffix(getEnv("MINIO_PUBLIC_URL", scheme+"://"+endpoint), "/"),
	}
}

// LoadConfig reads .env (if present) and the process environment.
// It never substitutes a signing key; call Validate before use.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort:             getEnvAsInt("SERVER_PORT", 8080),
		Environment:            getEnv("APP_ENV", "development"),
		DB:                     LoadDB(),
		MinIO:                  LoadMinIO(),
		JWTSecretKey:           getEnv("JWT_SECRET_KEY", ""),
		BcryptCost:             getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		AllowAdminRegistration: getEnvBool("ALLOW_ADMIN_REGISTRATION", false),
		CORSOrigins:            getEnvList("CORS_ORIGINS", "*"),
		MaxUploadSize:          parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		ReadTimeout:            getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:           getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:        getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is not set")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", c.MaxUploadSize)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}
