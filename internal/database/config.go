package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds the connection settings assembled from the
// DB_* environment variables
type DatabaseConfig struct {
	// Driver selects the backend (DB_DRIVER: postgres or sqlite).
	// SQLite is the development default; deployments run Postgres.
	Driver string

	// PostgreSQL settings (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD,
	// DB_NAME, DB_SSLMODE)
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite database file (DB_PATH)
	Path string
}

// NormalizeDriver canonicalizes a DB_DRIVER value so "Postgres",
// "postgresql" and "postgres" all select the same driver.
func NormalizeDriver(driver string) string {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver == "postgresql" {
		return "postgres"
	}
	return driver
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		NormalizeDriver(c.Driver), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds the driver-specific Data Source Name
func (c *DatabaseConfig) DSN() string {
	switch NormalizeDriver(c.Driver) {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}
