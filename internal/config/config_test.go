package config

import (
	"log/slog"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEALDESK_JWT_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DBPath != "./data/dealdesk.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/dealdesk.db")
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.SeedDemo {
		t.Error("SeedDemo should default to false")
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v, want INFO", cfg.SlogLevel())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEALDESK_JWT_SECRET", testSecret)
	t.Setenv("DEALDESK_ADDR", ":9090")
	t.Setenv("DEALDESK_TOKEN_TTL", "90m")
	t.Setenv("DEALDESK_SEED_DEMO", "true")
	t.Setenv("DEALDESK_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Errorf("TokenTTL = %v, want 90m", cfg.TokenTTL)
	}
	if !cfg.SeedDemo {
		t.Error("SeedDemo override not applied")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want DEBUG", cfg.SlogLevel())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short secret", map[string]string{"DEALDESK_JWT_SECRET": "short"}},
		{"bad duration", map[string]string{"DEALDESK_JWT_SECRET": testSecret, "DEALDESK_TOKEN_TTL": "forever"}},
		{"admin email without password", map[string]string{"DEALDESK_JWT_SECRET": testSecret, "DEALDESK_ADMIN_EMAIL": "owner@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Expected Load to fail")
			}
		})
	}
}

func TestLoadAdminBootstrap(t *testing.T) {
	t.Setenv("DEALDESK_JWT_SECRET", testSecret)
	t.Setenv("DEALDESK_ADMIN_EMAIL", "owner@example.com")
	t.Setenv("DEALDESK_ADMIN_PASSWORD", "change-me-please")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AdminEmail != "owner@example.com" {
		t.Errorf("AdminEmail = %q, want %q", cfg.AdminEmail, "owner@example.com")
	}
}
