package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	ServerPort string
	GinMode    string
	LogLevel   string

	DBDriver string
	DBUrl    string

	SessionSecret     string
	SessionTTL        time.Duration
	SessionCookieName string
	CookieSecure      bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigins    []string
	ClinicTimezone string
	DoctorCacheTTL time.Duration

	S3Bucket     string
	S3Region     string
	S3Prefix     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3PresignTTL time.Duration
}

// Load reads an optional .env file and builds the configuration from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not parse .env file", "err", err)
	}

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "5000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBUrl:    getEnv("DATABASE_URL", "db/app.db"),

		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "appsalute_session"),
		CookieSecure:      getBool("COOKIE_SECURE", false),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		CORSOrigins:    getList("CORS_ORIGINS", []string{"http://localhost:5000"}),
		ClinicTimezone: getEnv("CLINIC_TIMEZONE", "Europe/Rome"),
		DoctorCacheTTL: getDuration("DOCTOR_CACHE_TTL", 5*time.Minute),

		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3Region:     getEnv("S3_REGION", "eu-south-1"),
		S3Prefix:     getEnv("S3_PREFIX", "doctors/"),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:  getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PresignTTL: getDuration("S3_PRESIGN_TTL", 15*time.Minute),
	}
}

// Validate reports configuration that would make the server unsafe or unable to start.
func (c *Config) Validate() error {
	if c.SessionSecret == "" && !c.IsTest() {
		return errors.New("SESSION_SECRET must be set")
	}
	switch c.DBDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if err := validateOrigins(c.CORSOrigins); err != nil {
		return err
	}
	// cached doctor entries carry presigned URLs; they must not outlive the signature
	if c.S3Bucket != "" && c.DoctorCacheTTL >= c.PresignTTL() {
		return fmt.Errorf("DOCTOR_CACHE_TTL (%s) must be shorter than S3_PRESIGN_TTL (%s)", c.DoctorCacheTTL, c.PresignTTL())
	}
	return nil
}

// PresignTTL is the lifetime of presigned image URLs, defaulting to 15 minutes.
func (c *Config) PresignTTL() time.Duration {
	if c.S3PresignTTL <= 0 {
		return 15 * time.Minute
	}
	return c.S3PresignTTL
}

func validateOrigins(origins []string) error {
	if len(origins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin")
	}
	for _, o := range origins {
		u, err := url.Parse(o)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS entry %q must be an http(s) origin", o)
		}
	}
	return nil
}

func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
