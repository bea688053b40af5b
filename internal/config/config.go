package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Addr is the listen address for the HTTP API server
	Addr string `yaml:"addr" validate:"required"`

	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// JWTSecret signs and verifies API session tokens
	JWTSecret string `yaml:"jwtSecret" validate:"required"`

	// TokenDuration bounds how long issued session tokens stay valid
	TokenDuration time.Duration `yaml:"tokenDuration" validate:"omitempty,min=1m"`

	// StrictRequestValidation rejects cover requests whose start time is not
	// before their end time. Defaults to on when unset.
	StrictRequestValidation *bool `yaml:"strictRequestValidation,omitempty"`

	// GmailUserID enables email notifications when set
	GmailUserID string `yaml:"gmailUserID,omitempty"`
	GmailSender string `yaml:"gmailSender,omitempty"`
}

// StrictValidation reports whether request time-order validation is enabled
func (c *Config) StrictValidation() bool {
	return c.StrictRequestValidation == nil || *c.StrictRequestValidation
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shift_cover_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads and validates the configuration with an environment suffix.
// For example, env="test" will look for "shift_cover_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = time.Hour
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// findConfigFile searches for shift_cover_config.yaml in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "shift_cover_config.yaml"
	if env != "" {
		configFileName = "shift_cover_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
