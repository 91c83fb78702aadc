package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`

	// Notification dispatcher (Resend)
	ResendAPIKey     string `json:"resend_api_key"`
	NotifyFrom       string `json:"notify_from"`
	NotifyAdminEmail string `json:"notify_admin_email"`

	// Public content cache
	CacheBackend  string `json:"cache_backend"` // memory | redis
	CacheTTL      int    `json:"cache_ttl"`     // seconds
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Bootstrap admin (seeded when the users table is empty)
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], JWTSecret: [REDACTED], ResendAPIKey: [REDACTED], NotifyAdminEmail: %s, CacheBackend: %s, RedisAddr: %s}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.NotifyAdminEmail, c.CacheBackend, c.RedisAddr)
}

// LoadConfig reads the application configuration from environment variables
// and returns a Config struct. The Resend API key may legitimately be empty
// at startup; in that case every notification send fails and is logged, but
// contact submissions are still persisted.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:       port,
		Host:       GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:   GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:     GetEnvWithDefault("DB_PATH", "fortera.sqlite"),
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", "5432"),
		DBName:     GetEnvWithDefault("DB_NAME", "fortera"),
		DBUser:     GetEnvWithDefault("DB_USER", "fortera"),
		DBPassword: GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),

		JWTSecret: GetEnvWithDefault("JWT_SECRET", "secret"),

		ResendAPIKey:     GetEnvWithDefault("RESEND_API_KEY", ""),
		NotifyFrom:       GetEnvWithDefault("NOTIFY_FROM", "Fortera Digital <onboarding@resend.dev>"),
		NotifyAdminEmail: GetEnvWithDefault("NOTIFY_ADMIN_EMAIL", "webadmin@forteraglobalgroup.com"),

		CacheBackend:  GetEnvWithDefault("CACHE_BACKEND", "memory"),
		CacheTTL:      GetEnvAsType("CACHE_TTL", 300),
		RedisAddr:     GetEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsType("REDIS_DB", 0),

		AdminEmail:    GetEnvWithDefault("ADMIN_EMAIL", ""),
		AdminPassword: GetEnvWithDefault("ADMIN_PASSWORD", ""),
	}

	if config.ResendAPIKey == "" {
		log.Warn("RESEND_API_KEY not set, contact notification sends will fail")
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
