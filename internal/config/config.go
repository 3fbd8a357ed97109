package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, ex: SVCREPORT_LOG_LEVEL.
const EnvPrefix = "SVCREPORT"

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	PrettyLog bool   `envconfig:"PRETTY_LOG" default:"true"` // true => zap dev (color), false => zap prod (JSON)

	// MissingRefs decides what happens when a service points at an unknown
	// chain or a link points at an unknown component/service.
	MissingRefs string `envconfig:"MISSING_REFS" default:"skip" validate:"oneof=skip fail"`

	XLSX     bool `envconfig:"XLSX" default:"false"`     // also write report.xlsx
	Manifest bool `envconfig:"MANIFEST" default:"false"` // also write report.yaml

	// Redis publishing, disabled when RedisAddr is empty.
	RedisAddr           string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUser           string        `envconfig:"REDIS_USERNAME"`
	RedisPassword       string        `envconfig:"REDIS_PASSWORD"`
	RedisDB             int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisPrefix         string        `envconfig:"REDIS_PREFIX" default:"svcreport" validate:"required"`
	RedisTTL            time.Duration `envconfig:"REDIS_TTL" default:"24h" validate:"gt=0"`
	RedisConnectTimeout time.Duration `envconfig:"REDIS_CONNECT_TIMEOUT" default:"10s" validate:"gt=0"`
	RedisRetryInterval  time.Duration `envconfig:"REDIS_RETRY_INTERVAL" default:"500ms" validate:"gt=0"`
	RedisMaxWait        time.Duration `envconfig:"REDIS_MAX_WAIT" default:"2s" validate:"gt=0"`
	PublishTimeout      time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"30s" validate:"gt=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and reports every violation at once,
// using the environment variable names so the message is actionable.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", envName(fe.StructField()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// PublishEnabled reports whether the report should be pushed to Redis.
func (c *Config) PublishEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

var envNames = map[string]string{
	"LogLevel":            "LOG_LEVEL",
	"MissingRefs":         "MISSING_REFS",
	"RedisAddr":           "REDIS_ADDR",
	"RedisDB":             "REDIS_DB",
	"RedisPrefix":         "REDIS_PREFIX",
	"RedisTTL":            "REDIS_TTL",
	"RedisConnectTimeout": "REDIS_CONNECT_TIMEOUT",
	"RedisRetryInterval":  "REDIS_RETRY_INTERVAL",
	"RedisMaxWait":        "REDIS_MAX_WAIT",
	"PublishTimeout":      "PUBLISH_TIMEOUT",
}

func envName(field string) string {
	if name, ok := envNames[field]; ok {
		return EnvPrefix + "_" + name
	}
	return field
}
