package config

import "strings"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"required,gt=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"required,gt=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"required,gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// TokenSecret signs session tokens. Must be at least 32 characters.
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`
}

// CORSConfig contains the cross-origin settings for the HTTP surface.
type CORSConfig struct {
	// AllowedOrigins is a comma-separated list of origins. Entries may
	// use a leading "*." to match any subdomain.
	AllowedOrigins string `mapstructure:"allowed_origins" validate:"required"`
}

// Origins returns the configured origins as a cleaned slice.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
