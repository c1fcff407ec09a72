// Package config loads service configuration from defaults, an
// optional YAML file, and PHONEY_* environment overrides, in that
// order.
package config

import "time"

// Config is the root service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Limits    LimitsConfig    `yaml:"limits" validate:"required"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"min=1s"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"min=1s"`
}

// AuthConfig guards the /api/v1 surface. PasswordHash is a bcrypt hash
// checked by the token endpoint; APIKey, when set, is accepted as an
// alternative credential on authenticated routes.
type AuthConfig struct {
	Username     string        `yaml:"username"`
	PasswordHash string        `yaml:"password_hash"`
	APIKey       string        `yaml:"api_key"`
	TokenTTL     time.Duration `yaml:"token_ttl" validate:"min=1m"`
}

// RateLimitConfig bounds request rates per client address.
type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute" validate:"min=1"`
	Burst     int `yaml:"burst" validate:"min=1"`
}

// CORSConfig mirrors the usual browser cross-origin knobs.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
	Methods []string `yaml:"methods"`
	Headers []string `yaml:"headers"`
}

// LimitsConfig caps generation work per request. StreamingThreshold is
// the record count above which responses flag streaming delivery; the
// cap and flag are service policy, not engine behavior.
type LimitsConfig struct {
	MaxCount           int `yaml:"max_count" validate:"min=1"`
	MaxTemplateCount   int `yaml:"max_template_count" validate:"min=1"`
	StreamingThreshold int `yaml:"streaming_threshold" validate:"min=1"`
}

// LoggingConfig selects log verbosity and output shape.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file or environment
// overrides are present. The default credentials exist for local
// development only.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			Username: "default_user",
			TokenTTL: 7 * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 60,
			Burst:     10,
		},
		CORS: CORSConfig{
			Origins: []string{"http://localhost:3000", "http://localhost:8000"},
			Methods: []string{"*"},
			Headers: []string{"*"},
		},
		Limits: LimitsConfig{
			MaxCount:           100,
			MaxTemplateCount:   1000,
			StreamingThreshold: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
