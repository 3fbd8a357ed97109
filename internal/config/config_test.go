package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if !cfg.PrettyLog {
		t.Error("PrettyLog = false, want true")
	}
	if cfg.MissingRefs != "skip" {
		t.Errorf("MissingRefs = %v, want skip", cfg.MissingRefs)
	}
	if cfg.XLSX || cfg.Manifest {
		t.Error("optional outputs should be disabled by default")
	}
	if cfg.PublishEnabled() {
		t.Error("PublishEnabled() = true without REDIS_ADDR")
	}
	if cfg.RedisTTL != 24*time.Hour {
		t.Errorf("RedisTTL = %v, want 24h", cfg.RedisTTL)
	}
	if cfg.RedisPrefix != "svcreport" {
		t.Errorf("RedisPrefix = %v, want svcreport", cfg.RedisPrefix)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SVCREPORT_LOG_LEVEL", "debug")
	t.Setenv("SVCREPORT_PRETTY_LOG", "false")
	t.Setenv("SVCREPORT_MISSING_REFS", "fail")
	t.Setenv("SVCREPORT_XLSX", "true")
	t.Setenv("SVCREPORT_MANIFEST", "true")
	t.Setenv("SVCREPORT_REDIS_ADDR", "localhost:6379")
	t.Setenv("SVCREPORT_REDIS_TTL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.PrettyLog {
		t.Errorf("logging = %v/%v, want debug/false", cfg.LogLevel, cfg.PrettyLog)
	}
	if cfg.MissingRefs != "fail" {
		t.Errorf("MissingRefs = %v, want fail", cfg.MissingRefs)
	}
	if !cfg.XLSX || !cfg.Manifest {
		t.Error("optional outputs should be enabled")
	}
	if !cfg.PublishEnabled() {
		t.Error("PublishEnabled() = false with REDIS_ADDR set")
	}
	if cfg.RedisTTL != 90*time.Minute {
		t.Errorf("RedisTTL = %v, want 90m", cfg.RedisTTL)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{
			name:    "unknown log level",
			key:     "SVCREPORT_LOG_LEVEL",
			value:   "verbose",
			wantMsg: "SVCREPORT_LOG_LEVEL",
		},
		{
			name:    "unknown policy",
			key:     "SVCREPORT_MISSING_REFS",
			value:   "ignore",
			wantMsg: "SVCREPORT_MISSING_REFS",
		},
		{
			name:    "redis addr without port",
			key:     "SVCREPORT_REDIS_ADDR",
			value:   "localhost",
			wantMsg: "SVCREPORT_REDIS_ADDR",
		},
		{
			name:    "negative db",
			key:     "SVCREPORT_REDIS_DB",
			value:   "-1",
			wantMsg: "SVCREPORT_REDIS_DB",
		},
		{
			name:    "unparsable duration",
			key:     "SVCREPORT_REDIS_TTL",
			value:   "soon",
			wantMsg: "failed to load config from env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should have failed")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want it to mention %v", err, tt.wantMsg)
			}
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := &Config{RedisUser: "admin", RedisPassword: "secret"}
	red := cfg.Redacted()

	if red.RedisPassword == "secret" || red.RedisUser == "admin" {
		t.Errorf("Redacted() leaked credentials: %+v", red)
	}
	if cfg.RedisPassword != "secret" {
		t.Error("Redacted() modified the original config")
	}
}
