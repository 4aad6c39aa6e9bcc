// Package config loads application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	App struct {
		// FrontendURL is used to build links embedded in emails
		FrontendURL string `yaml:"frontend_url" env:"APP_FRONTEND_URL"`
	} `yaml:"app"`

	Mongo struct {
		URI            string `yaml:"uri" env:"MONGO_URI"`
		Database       string `yaml:"database" env:"MONGO_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT"`
	} `yaml:"mongo"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Media struct {
		// Mode selects the backend: "http" for the external media host,
		// "local" for filesystem storage served under /uploads
		Mode        string `yaml:"mode" env:"MEDIA_MODE"`
		BaseURL     string `yaml:"base_url" env:"MEDIA_BASE_URL"`
		APIKey      string `yaml:"api_key" env:"MEDIA_API_KEY"`
		StoragePath string `yaml:"storage_path" env:"MEDIA_STORAGE_PATH"`
		PublicURL   string `yaml:"public_url" env:"MEDIA_PUBLIC_URL"`
	} `yaml:"media"`

	Cleanup struct {
		Interval   string `yaml:"interval" env:"CLEANUP_INTERVAL"`
		PurgeAfter string `yaml:"purge_after" env:"CLEANUP_PURGE_AFTER"`
	} `yaml:"cleanup"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.App.FrontendURL = "http://localhost:5173"

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "vinculatec"
	config.Mongo.ConnectTimeout = "10s"

	config.JWT.TokenExpiration = "72h"
	config.JWT.Issuer = "vinculatec.app"

	config.SMTP.Host = "smtp.gmail.com"
	config.SMTP.Port = 587
	config.SMTP.FromName = "Red de Egresados ITTG"

	config.Media.Mode = "local"
	config.Media.StoragePath = "./uploads"
	config.Media.PublicURL = "http://localhost:8080/uploads"

	config.Cleanup.Interval = "24h"
	config.Cleanup.PurgeAfter = "168h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if config.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}
	if _, err := time.ParseDuration(config.Cleanup.Interval); err != nil {
		return fmt.Errorf("invalid cleanup interval format: %w", err)
	}
	if _, err := time.ParseDuration(config.Cleanup.PurgeAfter); err != nil {
		return fmt.Errorf("invalid cleanup purge_after format: %w", err)
	}
	if _, err := time.ParseDuration(config.Mongo.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid mongo connect_timeout format: %w", err)
	}

	switch config.Media.Mode {
	case "http":
		if config.Media.BaseURL == "" {
			return fmt.Errorf("media base_url is required in http mode")
		}
	case "local":
	default:
		return fmt.Errorf("unknown media mode %q", config.Media.Mode)
	}

	return nil
}

// TokenExpiration returns the parsed JWT lifetime
func (c *Config) TokenExpiration() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TokenExpiration)
	return d
}

// CleanupInterval returns the parsed sweep interval
func (c *Config) CleanupInterval() time.Duration {
	d, _ := time.ParseDuration(c.Cleanup.Interval)
	return d
}

// CleanupPurgeAfter returns the parsed retention window
func (c *Config) CleanupPurgeAfter() time.Duration {
	d, _ := time.ParseDuration(c.Cleanup.PurgeAfter)
	return d
}

// MongoConnectTimeout returns the parsed connection timeout
func (c *Config) MongoConnectTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Mongo.ConnectTimeout)
	return d
}
