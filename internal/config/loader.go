package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load builds a Config from defaults, the YAML file at path (skipped
// when path is empty or missing), and PHONEY_* environment overrides.
// The merged result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Missing file falls back to defaults.
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dest *string) {
		if value, ok := os.LookupEnv(key); ok {
			*dest = value
		}
	}
	var envErr error
	setInt := func(key string, dest *int) {
		value, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			envErr = errors.Join(envErr, fmt.Errorf("config: %s: %w", key, err))
			return
		}
		*dest = n
	}
	setDuration := func(key string, dest *time.Duration) {
		value, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			envErr = errors.Join(envErr, fmt.Errorf("config: %s: %w", key, err))
			return
		}
		*dest = d
	}
	setList := func(key string, dest *[]string) {
		if value, ok := os.LookupEnv(key); ok {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			*dest = parts
		}
	}

	setString("PHONEY_HOST", &cfg.Server.Host)
	setInt("PHONEY_PORT", &cfg.Server.Port)
	setString("PHONEY_API_USERNAME", &cfg.Auth.Username)
	setString("PHONEY_API_PASSWORD_HASH", &cfg.Auth.PasswordHash)
	setString("PHONEY_API_KEY", &cfg.Auth.APIKey)
	setDuration("PHONEY_TOKEN_TTL", &cfg.Auth.TokenTTL)
	setInt("PHONEY_RATE_LIMIT_PER_MINUTE", &cfg.RateLimit.PerMinute)
	setInt("PHONEY_RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	setList("PHONEY_CORS_ORIGINS", &cfg.CORS.Origins)
	setInt("PHONEY_MAX_COUNT", &cfg.Limits.MaxCount)
	setInt("PHONEY_MAX_TEMPLATE_COUNT", &cfg.Limits.MaxTemplateCount)
	setInt("PHONEY_STREAMING_THRESHOLD", &cfg.Limits.StreamingThreshold)
	setString("PHONEY_LOG_LEVEL", &cfg.Logging.Level)
	setString("PHONEY_LOG_FORMAT", &cfg.Logging.Format)

	return envErr
}
