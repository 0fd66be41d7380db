package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/parsa000721/records/models"
)

// Defaults used when the matching environment variable is unset
const (
	DefaultPort           = "8080"
	DefaultStoreDriver    = "file"
	DefaultStorePath      = "./data"
	DefaultStoreKey       = "cases"
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds the project config values
type Config struct {
	Port        string
	BaseURL     string
	Environment string

	StoreDriver string
	StorePath   string
	StoreKey    string

	URL          string
	DatabaseName string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RequestTimeout time.Duration

	ArchiveSchedule    string
	ArchiveDir         string
	ArchiveS3Bucket    string
	ArchiveS3Region    string
	ArchiveS3Endpoint  string
	ArchiveS3PathStyle bool
}

// New sets up all config related services
func New() *Config {
	env := os.Getenv("ENVIRONMENT")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:        getEnv("PORT", DefaultPort),
		BaseURL:     os.Getenv("BASE_URL"),
		Environment: env,

		StoreDriver: getEnv("STORE_DRIVER", DefaultStoreDriver),
		StorePath:   getEnv("STORE_PATH", DefaultStorePath),
		StoreKey:    getEnv("STORE_KEY", DefaultStoreKey),

		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),

		ArchiveSchedule:    os.Getenv("ARCHIVE_SCHEDULE"),
		ArchiveDir:         os.Getenv("ARCHIVE_DIR"),
		ArchiveS3Bucket:    os.Getenv("ARCHIVE_S3_BUCKET"),
		ArchiveS3Region:    os.Getenv("ARCHIVE_S3_REGION"),
		ArchiveS3Endpoint:  os.Getenv("ARCHIVE_S3_ENDPOINT"),
		ArchiveS3PathStyle: getEnvBool("ARCHIVE_S3_PATH_STYLE", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnw("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return i
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		zap.S().Warnw("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnw("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
